package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/hospital-api/internal/model"
	"github.com/jwalitptl/hospital-api/pkg/errors"
)

var (
	admin  = &model.User{ID: "usr-admin001", Role: model.RoleAdmin}
	doctor = &model.User{ID: "usr-doc00001", Role: model.RoleDoctor}
)

func TestAdminOnlyUserOperations(t *testing.T) {
	for _, op := range []Operation{OpList, OpCreate, OpDelete} {
		assert.NoError(t, Authorize(admin, ResourceUser, op, ""), op)

		err := Authorize(doctor, ResourceUser, op, doctor.ID)
		require.Error(t, err, op)
		assert.True(t, errors.HasCode(err, errors.ErrForbidden), op)
	}
}

func TestUserReadUpdateSelfOrAdmin(t *testing.T) {
	for _, op := range []Operation{OpRead, OpUpdate} {
		assert.NoError(t, Authorize(admin, ResourceUser, op, doctor.ID), op)
		assert.NoError(t, Authorize(doctor, ResourceUser, op, doctor.ID), op)

		err := Authorize(doctor, ResourceUser, op, "usr-other001")
		assert.True(t, errors.HasCode(err, errors.ErrForbidden), op)
	}
}

func TestClinicalResourcesNeedOnlyAuthentication(t *testing.T) {
	resources := []Resource{
		ResourceOutPatient, ResourceInPatient, ResourceVisit, ResourceRound,
		ResourceOutPatientMedication, ResourceInPatientMedication,
		ResourceAppointment, ResourceAdmission, ResourceFeedback, ResourceReport,
	}
	ops := []Operation{OpList, OpCreate, OpRead, OpUpdate, OpDelete, OpTransition}
	for _, r := range resources {
		for _, op := range ops {
			assert.NoError(t, Authorize(doctor, r, op, "anything"), "%s %s", r, op)
		}
	}
}

func TestMissingActorIsUnauthorized(t *testing.T) {
	err := Authorize(nil, ResourceOutPatient, OpRead, "op-1")
	assert.True(t, errors.HasCode(err, errors.ErrUnauthorized))

	_, err = Check(context.Background(), ResourceUser, OpList, "")
	assert.True(t, errors.HasCode(err, errors.ErrUnauthorized))
}

func TestCheckUsesContextActor(t *testing.T) {
	ctx := WithActor(context.Background(), doctor)

	actor, err := Check(ctx, ResourceUser, OpRead, doctor.ID)
	require.NoError(t, err)
	assert.Same(t, doctor, actor)

	_, err = Check(ctx, ResourceUser, OpList, "")
	assert.True(t, errors.HasCode(err, errors.ErrForbidden))
}
