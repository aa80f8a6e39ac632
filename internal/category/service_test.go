package category_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/andremtx/grana/internal/category"
)

func TestService_Create(t *testing.T) {
	userID := uuid.New()

	type args struct {
		params category.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *category.MockRepository)
		check     func(t *testing.T, got *category.Category)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "DefaultsColorAndIcon",
			args: args{
				params: category.CreateParams{Name: "Food", Type: category.TypeExpense},
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						c.ID = uuid.New()
						return nil
					})
			},
			check: func(t *testing.T, got *category.Category) {
				assert.Equal(t, "#4CAF50", got.Color)
				assert.Equal(t, "category", got.Icon)
			},
		},
		{
			name: "KeepsGivenColor",
			args: args{
				params: category.CreateParams{Name: "Rent", Type: category.TypeExpense, Color: "#123456", Icon: "home"},
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			check: func(t *testing.T, got *category.Category) {
				assert.Equal(t, "#123456", got.Color)
				assert.Equal(t, "home", got.Icon)
			},
		},
		{
			name: "NameTooShort",
			args: args{
				params: category.CreateParams{Name: "x", Type: category.TypeExpense},
			},
			wantErr: category.ErrInvalidInput,
		},
		{
			name: "InvalidType",
			args: args{
				params: category.CreateParams{Name: "Food", Type: category.Type("other")},
			},
			wantErr: category.ErrInvalidInput,
		},
		{
			name: "DuplicateName",
			args: args{
				params: category.CreateParams{Name: "Food", Type: category.TypeExpense},
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					Return(category.ErrAlreadyExists)
			},
			wantErr: category.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := category.NewService(repo)
			got, err := svc.Create(context.Background(), userID, tt.args.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestService_Update_Validates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	id := uuid.New()

	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().
		GetCategory(gomock.Any(), userID, id).
		Return(&category.Category{ID: id, UserID: userID, Name: "Food", Type: category.TypeExpense}, nil)

	svc := category.NewService(repo)
	_, err := svc.Update(context.Background(), userID, id, category.UpdateParams{
		Name: new("x"),
	})
	assert.ErrorIs(t, err, category.ErrInvalidInput)
}
