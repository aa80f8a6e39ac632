package category_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/andremtx/grana/internal/category"
)

func TestResolver_Resolve(t *testing.T) {
	userID := uuid.New()
	existingID := uuid.New()
	auto := &category.AutoCreate{Type: category.TypeExpense, Color: "#F44336", Icon: "category"}

	type args struct {
		ref  category.Ref
		auto *category.AutoCreate
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *category.MockRepository)
		wantID    *uuid.UUID
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "EmptyResolvesToNil",
			args: args{ref: category.Ref{Kind: category.RefEmpty}},
		},
		{
			name: "ByIDFound",
			args: args{ref: category.Ref{Kind: category.RefByID, ID: existingID}},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					GetCategory(gomock.Any(), userID, existingID).
					Return(&category.Category{ID: existingID, UserID: userID, Name: "Food"}, nil)
			},
			wantID: &existingID,
		},
		{
			name: "ByIDNotFound",
			args: args{ref: category.Ref{Kind: category.RefByID, ID: existingID}},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					GetCategory(gomock.Any(), userID, existingID).
					Return(nil, category.ErrNotFound)
			},
			wantErr: true,
		},
		{
			name: "ByNameFound",
			args: args{ref: category.Ref{Kind: category.RefByName, Name: "food"}},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					FindCategoryByName(gomock.Any(), userID, "food").
					Return(&category.Category{ID: existingID, UserID: userID, Name: "Food"}, nil)
			},
			wantID: &existingID,
		},
		{
			name: "ByNameMissingWithoutAutoCreate",
			args: args{ref: category.Ref{Kind: category.RefByName, Name: "nope"}},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					FindCategoryByName(gomock.Any(), userID, "nope").
					Return(nil, nil)
			},
			wantErr: true,
		},
		{
			name: "ByNameMissingAutoCreates",
			args: args{
				ref:  category.Ref{Kind: category.RefByName, Name: "Travel"},
				auto: auto,
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					FindCategoryByName(gomock.Any(), userID, "Travel").
					Return(nil, nil)
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *category.Category) error {
						assert.Equal(t, "Travel", c.Name)
						assert.Equal(t, category.TypeExpense, c.Type)
						assert.Equal(t, "#F44336", c.Color)
						c.ID = existingID
						return nil
					})
			},
			wantID: &existingID,
		},
		{
			name: "ByNameCreationRaceRecovers",
			args: args{
				ref:  category.Ref{Kind: category.RefByName, Name: "Travel"},
				auto: auto,
			},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					FindCategoryByName(gomock.Any(), userID, "Travel").
					Return(nil, nil)
				m.EXPECT().
					CreateCategory(gomock.Any(), gomock.Any()).
					Return(category.ErrAlreadyExists)
				m.EXPECT().
					FindCategoryByName(gomock.Any(), userID, "Travel").
					Return(&category.Category{ID: existingID, UserID: userID, Name: "Travel"}, nil)
			},
			wantID: &existingID,
		},
		{
			name: "RepoError",
			args: args{ref: category.Ref{Kind: category.RefByName, Name: "x"}},
			setupMock: func(m *category.MockRepository) {
				m.EXPECT().
					FindCategoryByName(gomock.Any(), userID, "x").
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
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

			resolver := category.NewResolver(repo)
			got, err := resolver.Resolve(context.Background(), userID, tt.args.ref, tt.args.auto)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, got)
		})
	}
}

func TestResolver_Resolve_InvalidReferenceCarriesValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().
		FindCategoryByName(gomock.Any(), userID, "nope").
		Return(nil, nil)

	resolver := category.NewResolver(repo)
	_, err := resolver.Resolve(context.Background(), userID, category.Ref{Kind: category.RefByName, Name: "nope"}, nil)

	var invalid *category.InvalidReferenceError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "nope", invalid.Value)
}
