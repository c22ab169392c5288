package services

import (
	"errors"

	"mingle/internal/apperrors"
	"mingle/internal/repositories"
)

// IntegrityChecker verifies foreign-key and uniqueness preconditions before a
// mutation is applied. All checks are read-only: a failed check aborts the
// operation before any write happens.
type IntegrityChecker struct {
	userRepo       repositories.UserRepository
	profileRepo    repositories.ProfileRepository
	memberTypeRepo repositories.MemberTypeRepository
}

// NewIntegrityChecker creates a new IntegrityChecker.
func NewIntegrityChecker(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	memberTypeRepo repositories.MemberTypeRepository,
) *IntegrityChecker {
	return &IntegrityChecker{
		userRepo:       userRepo,
		profileRepo:    profileRepo,
		memberTypeRepo: memberTypeRepo,
	}
}

// CheckUserReference fails with a reference error when the userId in a payload
// does not resolve to an existing user.
func (c *IntegrityChecker) CheckUserReference(userID string) error {
	_, err := c.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Reference("userId", userID)
		}
		return err
	}
	return nil
}

// CheckMemberTypeReference fails with a reference error when the memberTypeId
// in a payload does not resolve to an existing member type.
func (c *IntegrityChecker) CheckMemberTypeReference(memberTypeID string) error {
	_, err := c.memberTypeRepo.GetByID(memberTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.Reference("memberTypeId", memberTypeID)
		}
		return err
	}
	return nil
}

// CheckNoProfileForUser enforces the one-profile-per-user rule.
func (c *IntegrityChecker) CheckNoProfileForUser(userID string) error {
	_, err := c.profileRepo.GetByUserID(userID)
	if err == nil {
		return apperrors.Conflict("profile", "user "+userID+" already has a profile")
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil
	}
	return err
}
