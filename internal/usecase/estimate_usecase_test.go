package usecase

import (
	"context"
	"errors"
	"testing"

	"atelier_auto/internal/domain/entities"
	mock_interfaces "atelier_auto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func validItems() []entities.LineItem {
	return []entities.LineItem{
		{ID: "p1", Kind: entities.ItemKindPart, Designation: "<p>Filter</p>", UnitPrice: 20, Quantity: intPtr(1), Position: 1},
		{ID: "l1", Kind: entities.ItemKindLabor, Designation: "<p>Service</p>", UnitPrice: 100, Quantity: intPtr(60), CalculateByTime: true, Position: 2},
		{ID: "u1", Kind: entities.ItemKindUpcoming, Designation: "<p>Tyres</p>", Position: 1},
	}
}

func TestEstimateUseCase_CreateFromIntervention(t *testing.T) {
	t.Run("invalid intervention id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.CreateFromIntervention(context.Background(), "   ", entities.EstimateTypeIndividual, "")
		if !errors.Is(err, ErrInvalidInterventionID) {
			t.Fatalf("expected ErrInvalidInterventionID, got %v", err)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.CreateFromIntervention(context.Background(), "iv-1", "corporate", "")
		if !errors.Is(err, ErrInvalidEstimateType) {
			t.Fatalf("expected ErrInvalidEstimateType, got %v", err)
		}
	})

	t.Run("claim number on individual estimate", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.CreateFromIntervention(context.Background(), "iv-1", entities.EstimateTypeIndividual, "CL-7")
		if !errors.Is(err, ErrNotInsuranceEstimate) {
			t.Fatalf("expected ErrNotInsuranceEstimate, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Estimate{})).DoAndReturn(
			func(_ context.Context, e entities.Estimate) (entities.Estimate, error) {
				if e.ID == "" || e.InterventionID != "iv-1" || e.Type != entities.EstimateTypeInsurance {
					t.Fatalf("unexpected estimate: %+v", e)
				}
				if e.Status != entities.EstimateStatusDraft {
					t.Fatalf("expected draft status, got %s", e.Status)
				}
				if e.ClaimNumber == nil || *e.ClaimNumber != "CL-7" {
					t.Fatalf("expected claim number CL-7, got %v", e.ClaimNumber)
				}
				if len(e.Items) != 0 {
					t.Fatalf("expected empty item list")
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return e, nil
			},
		)

		res, err := uc.CreateFromIntervention(context.Background(), " iv-1 ", entities.EstimateTypeInsurance, " CL-7 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestEstimateUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEstimateID) {
			t.Fatalf("expected ErrInvalidEstimateID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{}, nil)

		_, err := uc.GetByID(context.Background(), "e-1")
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "e-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestEstimateUseCase_ReplaceItems(t *testing.T) {
	existing := entities.Estimate{ID: "e-1", Type: entities.EstimateTypeIndividual, Status: entities.EstimateStatusAccepted}

	t.Run("success resets status through the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		items := validItems()
		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(existing, nil)
		repo.EXPECT().ReplaceItems(gomock.Any(), "e-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, id string, got []entities.LineItem) (entities.Estimate, error) {
				if len(got) != 3 {
					t.Fatalf("expected 3 items, got %d", len(got))
				}
				// Display order: parts, labor, upcoming.
				if got[0].ID != "p1" || got[1].ID != "l1" || got[2].ID != "u1" {
					t.Fatalf("unexpected order: %s %s %s", got[0].ID, got[1].ID, got[2].ID)
				}
				updated := existing
				updated.Status = entities.EstimateStatusDraft
				updated.Items = got
				return updated, nil
			},
		)

		res, err := uc.ReplaceItems(context.Background(), "e-1", items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.EstimateStatusDraft {
			t.Fatalf("expected draft status, got %s", res.Status)
		}
	})

	t.Run("empty list clears the estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(existing, nil)
		repo.EXPECT().ReplaceItems(gomock.Any(), "e-1", gomock.Len(0)).Return(existing, nil)

		if _, err := uc.ReplaceItems(context.Background(), "e-1", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("invalid item fails before the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(existing, nil)
		items := validItems()
		items[0].Designation = ""

		_, err := uc.ReplaceItems(context.Background(), "e-1", items)
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("position violations fail loudly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(existing, nil)
		items := validItems()
		items[1].Position = 1 // duplicate within the priced partition

		_, err := uc.ReplaceItems(context.Background(), "e-1", items)
		if !errors.Is(err, ErrInvalidItemPositions) {
			t.Fatalf("expected ErrInvalidItemPositions, got %v", err)
		}
	})

	t.Run("trashed estimate rejects edits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		trashed := existing
		trashed.Trashed = true
		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(trashed, nil)

		_, err := uc.ReplaceItems(context.Background(), "e-1", validItems())
		if !errors.Is(err, ErrEstimateTrashed) {
			t.Fatalf("expected ErrEstimateTrashed, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-404").Return(entities.Estimate{}, nil)

		_, err := uc.ReplaceItems(context.Background(), "e-404", validItems())
		if !errors.Is(err, ErrEstimateNotFound) {
			t.Fatalf("expected ErrEstimateNotFound, got %v", err)
		}
	})
}

func TestEstimateUseCase_SetClaimNumber(t *testing.T) {
	t.Run("invalid claim number", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.SetClaimNumber(context.Background(), "e-1", "   ")
		if !errors.Is(err, ErrInvalidClaimNumber) {
			t.Fatalf("expected ErrInvalidClaimNumber, got %v", err)
		}
	})

	t.Run("individual estimate rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", Type: entities.EstimateTypeIndividual}, nil)

		_, err := uc.SetClaimNumber(context.Background(), "e-1", "CL-9")
		if !errors.Is(err, ErrNotInsuranceEstimate) {
			t.Fatalf("expected ErrNotInsuranceEstimate, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1", Type: entities.EstimateTypeInsurance}, nil)
		repo.EXPECT().SetClaimNumber(gomock.Any(), "e-1", "CL-9").Return(entities.Estimate{ID: "e-1"}, nil)

		if _, err := uc.SetClaimNumber(context.Background(), "e-1", " CL-9 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_SetStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewEstimateUseCase(nil)
		_, err := uc.SetStatus(context.Background(), "e-1", "archived", "")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("refusal reason kept only for refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1"}, nil)
		repo.EXPECT().SetStatus(gomock.Any(), "e-1", entities.EstimateStatusAccepted, nil).Return(entities.Estimate{ID: "e-1"}, nil)

		if _, err := uc.SetStatus(context.Background(), "e-1", entities.EstimateStatusAccepted, "too expensive"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("refused carries the reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
		uc := NewEstimateUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1"}, nil)
		repo.EXPECT().SetStatus(gomock.Any(), "e-1", entities.EstimateStatusRefused, gomock.Not(gomock.Nil())).DoAndReturn(
			func(_ context.Context, id string, status entities.EstimateStatus, reason *string) (entities.Estimate, error) {
				if reason == nil || *reason != "too expensive" {
					t.Fatalf("expected refusal reason, got %v", reason)
				}
				return entities.Estimate{ID: "e-1"}, nil
			},
		)

		if _, err := uc.SetStatus(context.Background(), "e-1", entities.EstimateStatusRefused, " too expensive "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimateUseCase_TrashRestore(t *testing.T) {
	cases := []struct {
		name    string
		call    func(uc *EstimateUseCase, ctx context.Context, id string) (entities.Estimate, error)
		trashed bool
	}{
		{name: "trash", call: (*EstimateUseCase).Trash, trashed: true},
		{name: "restore", call: (*EstimateUseCase).Restore, trashed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
			uc := NewEstimateUseCase(repo)

			repo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.Estimate{ID: "e-1"}, nil)
			repo.EXPECT().SetTrashed(gomock.Any(), "e-1", tc.trashed).Return(entities.Estimate{ID: "e-1", Trashed: tc.trashed}, nil)

			res, err := tc.call(uc, context.Background(), "e-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Trashed != tc.trashed {
				t.Fatalf("expected trashed=%v", tc.trashed)
			}
		})

		t.Run(tc.name+" not found", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIEstimateRepository(ctrl)
			uc := NewEstimateUseCase(repo)

			repo.EXPECT().GetByID(gomock.Any(), "e-404").Return(entities.Estimate{}, nil)

			_, err := tc.call(uc, context.Background(), "e-404")
			if !errors.Is(err, ErrEstimateNotFound) {
				t.Fatalf("expected ErrEstimateNotFound, got %v", err)
			}
		})
	}
}
