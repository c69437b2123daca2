package domain_test

import (
	"testing"

	"go-talented-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		role    string
		from    string
		to      string
		allowed bool
	}{
		{"recruiter shortlists an applied application", domain.RoleRecruiter, domain.StatusApplied, domain.StatusShortlisted, true},
		{"recruiter rejects an applied application", domain.RoleRecruiter, domain.StatusApplied, domain.StatusRejected, true},
		{"recruiter rejects a shortlisted application", domain.RoleRecruiter, domain.StatusShortlisted, domain.StatusRejected, true},
		{"recruiter finishes an accepted engagement", domain.RoleRecruiter, domain.StatusAccepted, domain.StatusFinished, true},
		{"applicant cancels an applied application", domain.RoleApplicant, domain.StatusApplied, domain.StatusCancelled, true},
		{"applicant cancels a shortlisted application", domain.RoleApplicant, domain.StatusShortlisted, domain.StatusCancelled, true},

		{"recruiter cannot shortlist twice", domain.RoleRecruiter, domain.StatusShortlisted, domain.StatusShortlisted, false},
		{"recruiter cannot reject an accepted application", domain.RoleRecruiter, domain.StatusAccepted, domain.StatusRejected, false},
		{"recruiter cannot finish a pending application", domain.RoleRecruiter, domain.StatusShortlisted, domain.StatusFinished, false},
		{"recruiter cannot cancel on the applicant's behalf", domain.RoleRecruiter, domain.StatusApplied, domain.StatusCancelled, false},
		{"recruiter cannot accept through the generic transition", domain.RoleRecruiter, domain.StatusShortlisted, domain.StatusAccepted, false},
		{"applicant cannot shortlist", domain.RoleApplicant, domain.StatusApplied, domain.StatusShortlisted, false},
		{"applicant cannot cancel an accepted engagement", domain.RoleApplicant, domain.StatusAccepted, domain.StatusCancelled, false},
		{"nothing leaves rejected", domain.RoleRecruiter, domain.StatusRejected, domain.StatusShortlisted, false},
		{"nothing leaves cancelled", domain.RoleApplicant, domain.StatusCancelled, domain.StatusCancelled, false},
		{"nothing leaves deleted", domain.RoleRecruiter, domain.StatusDeleted, domain.StatusShortlisted, false},
		{"unknown role can do nothing", "admin", domain.StatusApplied, domain.StatusShortlisted, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, domain.CanTransition(tc.role, tc.from, tc.to))
		})
	}
}

func TestRoleMayRequest(t *testing.T) {
	assert.True(t, domain.RoleMayRequest(domain.RoleRecruiter, domain.StatusShortlisted))
	assert.True(t, domain.RoleMayRequest(domain.RoleRecruiter, domain.StatusRejected))
	assert.True(t, domain.RoleMayRequest(domain.RoleRecruiter, domain.StatusFinished))
	assert.True(t, domain.RoleMayRequest(domain.RoleApplicant, domain.StatusCancelled))

	assert.False(t, domain.RoleMayRequest(domain.RoleApplicant, domain.StatusShortlisted))
	assert.False(t, domain.RoleMayRequest(domain.RoleRecruiter, domain.StatusCancelled))
	assert.False(t, domain.RoleMayRequest(domain.RoleRecruiter, domain.StatusAccepted))
	assert.False(t, domain.RoleMayRequest(domain.RoleApplicant, domain.StatusDeleted))
}

func TestIsTerminalStatus(t *testing.T) {
	for _, s := range []string{domain.StatusRejected, domain.StatusDeleted, domain.StatusCancelled} {
		assert.True(t, domain.IsTerminalStatus(s), s)
	}
	for _, s := range []string{domain.StatusApplied, domain.StatusShortlisted, domain.StatusAccepted, domain.StatusFinished} {
		assert.False(t, domain.IsTerminalStatus(s), s)
	}
}

func TestStatusSets(t *testing.T) {
	// Accepted occupies capacity but does not block a fresh application
	// pair; the already-employed check owns that case.
	assert.Contains(t, domain.CapacityStatuses, domain.StatusAccepted)
	assert.NotContains(t, domain.OpenPairStatuses, domain.StatusAccepted)

	// Rejected and finished applications still pin the (applicant, job)
	// pair so the same job cannot be applied to twice.
	assert.Contains(t, domain.OpenPairStatuses, domain.StatusRejected)
	assert.Contains(t, domain.OpenPairStatuses, domain.StatusFinished)

	// Only pending states are withdrawn by the accept cascade.
	assert.ElementsMatch(t, []string{domain.StatusApplied, domain.StatusShortlisted}, domain.PendingStatuses)
}
