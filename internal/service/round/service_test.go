package round

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/internal/policy"
	"github.com/jwalitptl/hospital-api/internal/repository/mocks"
)

func TestCreateRound(t *testing.T) {
	repo := new(mocks.RoundRepository)
	svc := NewService(repo)
	ctx := policy.WithActor(context.Background(), &model.User{ID: "usr-doc", Role: model.RoleDoctor})
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.InPatientRound")).Return(nil)

	date := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	r, err := svc.Create(ctx, model.CreateRoundRequest{
		PatientID:       "ip-1",
		Date:            &date,
		ChiefComplaints: "fever",
		Diagnosis:       "viral",
	})

	require.NoError(t, err)
	assert.Contains(t, r.ID, model.PrefixInPatientRound)
	assert.Equal(t, model.RoundMorning, r.RoundType)
	require.NotNil(t, r.DoctorID)
	assert.Equal(t, "usr-doc", *r.DoctorID)
}
