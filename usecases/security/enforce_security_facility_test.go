package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srct/whats-open/models"
)

func TestUpdateFacility(t *testing.T) {
	facility := models.Facility{Id: 1, Slug: "southside", OwnerIds: []int64{7}}
	owners := []int64{7, 8}

	tts := []struct {
		name    string
		creds   models.Credentials
		input   models.UpdateFacilityInput
		wantErr error
	}{
		{"anonymous is rejected", models.Credentials{}, models.UpdateFacilityInput{}, models.UnAuthorizedError},
		{"superuser can edit", models.Credentials{UserId: 1, IsSuperuser: true}, models.UpdateFacilityInput{}, nil},
		{"superuser can change owners", models.Credentials{UserId: 1, IsSuperuser: true}, models.UpdateFacilityInput{OwnerIds: &owners}, nil},
		{"owner can edit", models.Credentials{UserId: 7}, models.UpdateFacilityInput{}, nil},
		{"owner cannot change owners", models.Credentials{UserId: 7}, models.UpdateFacilityInput{OwnerIds: &owners}, models.ForbiddenError},
		{"other user is forbidden", models.Credentials{UserId: 9}, models.UpdateFacilityInput{}, models.ForbiddenError},
	}

	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			e := EnforceSecurityFacilityImpl{
				EnforceSecurity: &EnforceSecurityImpl{Credentials: tt.creds},
			}
			err := e.UpdateFacility(facility, tt.input)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestWriteDirectory(t *testing.T) {
	superuser := EnforceSecurityDirectoryImpl{
		EnforceSecurity: &EnforceSecurityImpl{Credentials: models.Credentials{UserId: 1, IsSuperuser: true}},
	}
	assert.NoError(t, superuser.WriteDirectory())

	user := EnforceSecurityDirectoryImpl{
		EnforceSecurity: &EnforceSecurityImpl{Credentials: models.Credentials{UserId: 2, Username: "gmason"}},
	}
	assert.ErrorIs(t, user.WriteDirectory(), models.ForbiddenError)

	anonymous := EnforceSecurityDirectoryImpl{EnforceSecurity: &EnforceSecurityImpl{}}
	assert.ErrorIs(t, anonymous.WriteDirectory(), models.UnAuthorizedError)
}
