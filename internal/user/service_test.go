package user_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andremtx/grana/internal/user"
)

func TestService_Register(t *testing.T) {
	type args struct {
		params user.RegisterParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *user.MockRepository)
		wantEmail string
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{
				params: user.RegisterParams{Name: "Ana", Email: " Ana@Example.COM ", Password: "secret1"},
			},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u *user.User) error {
						u.ID = uuid.New()
						return nil
					})
			},
			wantEmail: "ana@example.com",
		},
		{
			name: "ShortPassword",
			args: args{
				params: user.RegisterParams{Name: "Ana", Email: "ana@example.com", Password: "12345"},
			},
			wantErr: user.ErrInvalidInput,
		},
		{
			name: "MissingName",
			args: args{
				params: user.RegisterParams{Email: "ana@example.com", Password: "secret1"},
			},
			wantErr: user.ErrInvalidInput,
		},
		{
			name: "EmailTaken",
			args: args{
				params: user.RegisterParams{Name: "Ana", Email: "ana@example.com", Password: "secret1"},
			},
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(user.ErrEmailTaken)
			},
			wantErr: user.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := user.NewService(repo)
			got, err := svc.Register(context.Background(), tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, got.Email)
			assert.NotEmpty(t, got.PasswordHash)
			assert.NotEqual(t, tt.args.params.Password, got.PasswordHash)
			assert.True(t, got.CheckPassword(tt.args.params.Password))
		})
	}
}

func TestService_Authenticate(t *testing.T) {
	hash, err := user.HashPassword("secret1")
	require.NoError(t, err)

	stored := &user.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: hash}

	type testCase struct {
		name      string
		email     string
		password  string
		setupMock func(m *user.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:     "Success",
			email:    " Ana@Example.com ",
			password: "secret1",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ana@example.com").
					Return(stored, nil)
			},
		},
		{
			name:     "WrongPassword",
			email:    "ana@example.com",
			password: "nope",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ana@example.com").
					Return(stored, nil)
			},
			wantErr: user.ErrInvalidCredentials,
		},
		{
			// A missing account reports the same error as a bad password.
			name:     "UnknownEmail",
			email:    "ghost@example.com",
			password: "secret1",
			setupMock: func(m *user.MockRepository) {
				m.EXPECT().
					GetUserByEmail(gomock.Any(), "ghost@example.com").
					Return(nil, user.ErrNotFound)
			},
			wantErr: user.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := user.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := user.NewService(repo)
			got, authErr := svc.Authenticate(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, authErr, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, authErr)
			assert.Equal(t, stored.ID, got.ID)
		})
	}
}

func TestService_UpdatePreferences_Merges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := user.NewMockRepository(ctrl)

	repo.EXPECT().
		GetUser(gomock.Any(), id).
		Return(&user.User{
			ID:          id,
			Preferences: map[string]any{"theme": "dark", "currency": "USD"},
		}, nil)
	repo.EXPECT().
		UpdatePreferences(gomock.Any(), id, map[string]any{
			"theme":    "light",
			"currency": "USD",
			"locale":   "pt-BR",
		}).
		Return(nil)

	svc := user.NewService(repo)
	got, err := svc.UpdatePreferences(context.Background(), id, map[string]any{
		"theme":  "light",
		"locale": "pt-BR",
	})

	require.NoError(t, err)
	assert.Equal(t, "light", got["theme"])
	assert.Equal(t, "USD", got["currency"])
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	hash, err := user.HashPassword("secret1")
	require.NoError(t, err)

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUser(gomock.Any(), id).
		Return(&user.User{ID: id, PasswordHash: hash}, nil).
		Times(2)
	repo.EXPECT().
		UpdatePassword(gomock.Any(), id, gomock.Any()).
		Return(nil)

	svc := user.NewService(repo)

	require.NoError(t, svc.ChangePassword(context.Background(), id, "secret1", "newsecret"))
	assert.ErrorIs(t, svc.ChangePassword(context.Background(), id, "wrong", "newsecret"), user.ErrInvalidCredentials)
}

func TestService_DeleteAccount_RequiresPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	hash, err := user.HashPassword("secret1")
	require.NoError(t, err)

	repo := user.NewMockRepository(ctrl)
	repo.EXPECT().
		GetUser(gomock.Any(), id).
		Return(&user.User{ID: id, PasswordHash: hash}, nil)

	svc := user.NewService(repo)
	assert.ErrorIs(t, svc.DeleteAccount(context.Background(), id, "wrong"), user.ErrInvalidCredentials)
}
