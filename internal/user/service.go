package user

import (
	"context"
	"errors"
	"time"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/config"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"
)

var ErrPersonNotFound = errors.New("person not found")

type Service interface {
	// Login looks a person up by email (the system has no passwords) and
	// stamps their last_login.
	Login(ctx context.Context, email string) (*whygo.Person, error)
	GetProfile(personID string) (*Profile, error)
	UpdateProfile(ctx context.Context, personID string, dto UpdateProfileDTO) (*whygo.Person, error)
}

type service struct {
	repo whygo.Repository
}

func NewService(repo whygo.Repository) Service {
	return &service{repo: repo}
}

func (s *service) Login(ctx context.Context, email string) (*whygo.Person, error) {
	log := config.WithContext(ctx)

	person, ok := s.repo.GetPersonByEmail(email)
	if !ok {
		return nil, ErrPersonNotFound
	}

	person.LastLogin = time.Now().Format(time.RFC3339)
	if s.repo.UpdatePerson(person) {
		if err := s.repo.SaveAll(); err != nil {
			// Login still succeeds; the stamp is best-effort bookkeeping.
			log.WithError(err).Warn("Failed to persist last_login")
		}
	}

	log.WithField("person_id", person.ID).Info("Person logged in")
	return person, nil
}

func (s *service) GetProfile(personID string) (*Profile, error) {
	person, ok := s.repo.GetPerson(personID)
	if !ok {
		return nil, ErrPersonNotFound
	}

	profile := &Profile{Person: *person}

	if dept, ok := s.repo.GetDepartment(person.DepartmentID); ok {
		profile.Department = dept
	}
	if person.ManagerID != nil {
		if manager, ok := s.repo.GetPerson(*person.ManagerID); ok {
			profile.Manager = manager
		}
	}
	for _, p := range s.repo.GetAllPeople() {
		if p.ManagerID != nil && *p.ManagerID == personID {
			profile.DirectReports = append(profile.DirectReports, p)
		}
	}
	return profile, nil
}

func (s *service) UpdateProfile(ctx context.Context, personID string, dto UpdateProfileDTO) (*whygo.Person, error) {
	log := config.WithContext(ctx)

	person, ok := s.repo.GetPerson(personID)
	if !ok {
		return nil, ErrPersonNotFound
	}

	if dto.Email != nil {
		person.Email = *dto.Email
	}
	if dto.Timezone != nil {
		person.Timezone = *dto.Timezone
	}
	if dto.NotificationEnabled != nil {
		person.NotificationEnabled = *dto.NotificationEnabled
	}

	if !s.repo.UpdatePerson(person) {
		return nil, ErrPersonNotFound
	}
	if err := s.repo.SaveAll(); err != nil {
		log.WithError(err).Error("Failed to persist profile update")
		return nil, err
	}

	log.WithField("person_id", personID).Info("Profile updated")
	return person, nil
}
