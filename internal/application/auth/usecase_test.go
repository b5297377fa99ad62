package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/quikfix/spares-api/internal/application/auth"
	"github.com/quikfix/spares-api/internal/application/dto"
	"github.com/quikfix/spares-api/internal/domain"
	"github.com/quikfix/spares-api/internal/domain/entity"
	pkgjwt "github.com/quikfix/spares-api/pkg/jwt"
)

type fakeUserRepo struct {
	byMobile map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byMobile: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.byMobile[u.Mobile] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byMobile {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByMobile(mobile string) (*entity.User, error) {
	return f.byMobile[mobile], nil
}

var testJWT = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "quikfix-test"}

func TestSignup_HashesPasswordAndDefaultsToCustomer(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)

	resp, err := uc.Signup(dto.SignupRequest{
		Name:     "Ravi Kumar",
		Mobile:   "9876543210",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, resp.Role)

	stored := repo.byMobile["9876543210"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pw", stored.PasswordHash, "plaintext must never persist")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pw")))
}

func TestSignup_Validation(t *testing.T) {
	uc := auth.NewUseCase(newFakeUserRepo(), testJWT)

	cases := []dto.SignupRequest{
		{Mobile: "9876543210", Password: "s3cret-pw"}, // no name
		{Name: "Ravi", Password: "s3cret-pw"},         // no mobile
		{Name: "Ravi", Mobile: "9876543210", Password: "short"},
	}
	for i, in := range cases {
		_, err := uc.Signup(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "case %d", i)
	}
}

func TestSignup_DuplicateMobile(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)

	in := dto.SignupRequest{Name: "Ravi", Mobile: "9876543210", Password: "s3cret-pw"}
	_, err := uc.Signup(in)
	require.NoError(t, err)

	_, err = uc.Signup(in)
	assert.ErrorIs(t, err, domain.ErrMobileAlreadyExists)
}

func TestLogin_ReturnsTokenWithRole(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)

	_, err := uc.Signup(dto.SignupRequest{Name: "Ravi", Mobile: "9876543210", Password: "s3cret-pw"})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Mobile: "9876543210", Password: "s3cret-pw"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "9876543210", resp.User.Mobile)

	userID, role, err := pkgjwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleCustomer, role)
}

func TestLogin_Failures(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, testJWT)
	_, err := uc.Signup(dto.SignupRequest{Name: "Ravi", Mobile: "9876543210", Password: "s3cret-pw"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Mobile: "9876543210", Password: "wrong-pw"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Mobile: "0000000000", Password: "s3cret-pw"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(dto.LoginRequest{Mobile: "", Password: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
