package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePromotionRepo is an in-memory stand-in for the promotion repository.
type fakePromotionRepo struct {
	promotions []*entity.Promotion
	err        error
}

func (f *fakePromotionRepo) Create(_ context.Context, promotion *entity.Promotion) error {
	if f.err != nil {
		return f.err
	}
	if promotion.ID == uuid.Nil {
		promotion.ID = uuid.New()
	}
	f.promotions = append(f.promotions, promotion)

	return nil
}

func (f *fakePromotionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Promotion, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, promotion := range f.promotions {
		if promotion.ID == id {
			return promotion, nil
		}
	}

	return nil, repository.ErrPromotionNotFound
}

func (f *fakePromotionRepo) FindAll(_ context.Context) ([]*entity.Promotion, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.promotions, nil
}

func (f *fakePromotionRepo) FindActive(_ context.Context, now time.Time) ([]*entity.Promotion, error) {
	if f.err != nil {
		return nil, f.err
	}
	var visible []*entity.Promotion
	for _, promotion := range f.promotions {
		if promotion.VisibleAt(now) {
			visible = append(visible, promotion)
		}
	}

	return visible, nil
}

func (f *fakePromotionRepo) Update(_ context.Context, updated *entity.Promotion) error {
	if f.err != nil {
		return f.err
	}
	for i, promotion := range f.promotions {
		if promotion.ID == updated.ID {
			f.promotions[i] = updated

			return nil
		}
	}

	return repository.ErrPromotionNotFound
}

func (f *fakePromotionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	for i, promotion := range f.promotions {
		if promotion.ID == id {
			f.promotions = append(f.promotions[:i], f.promotions[i+1:]...)

			return nil
		}
	}

	return repository.ErrPromotionNotFound
}

func newPromotionTestService(repo *fakePromotionRepo) usecase.PromotionUsecase {
	return NewPromotionService(PromotionServiceParams{PromotionRepo: repo})
}

func TestPromotionService_ActivePromotions_WindowAndToggle(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	running := &entity.Promotion{ID: uuid.New(), MessageEn: "Summer sale", IsActive: true, StartsAt: &past, EndsAt: &future}
	ended := &entity.Promotion{ID: uuid.New(), MessageEn: "Spring sale", IsActive: true, EndsAt: &past}
	upcoming := &entity.Promotion{ID: uuid.New(), MessageEn: "Eid sale", IsActive: true, StartsAt: &future}
	disabled := &entity.Promotion{ID: uuid.New(), MessageEn: "Hidden", IsActive: false}
	unbounded := &entity.Promotion{ID: uuid.New(), MessageEn: "Free delivery", IsActive: true}

	repo := &fakePromotionRepo{promotions: []*entity.Promotion{running, ended, upcoming, disabled, unbounded}}
	service := newPromotionTestService(repo)

	visible, err := service.ActivePromotions(context.Background())
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "Summer sale", visible[0].MessageEn)
	assert.Equal(t, "Free delivery", visible[1].MessageEn)
}

func TestPromotionService_CreatePromotion_RejectsInvertedWindow(t *testing.T) {
	starts := time.Now()
	ends := starts.Add(-time.Minute)
	service := newPromotionTestService(&fakePromotionRepo{})

	_, err := service.CreatePromotion(context.Background(), &usecase.PromotionInput{
		MessageEn: "Broken",
		MessageFr: "Cassé",
		MessageAr: "معطل",
		IsActive:  true,
		StartsAt:  &starts,
		EndsAt:    &ends,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestPromotionService_UpdatePromotion_NotFound(t *testing.T) {
	service := newPromotionTestService(&fakePromotionRepo{})

	_, err := service.UpdatePromotion(context.Background(), uuid.New(), &usecase.PromotionInput{
		MessageEn: "New",
		MessageFr: "Nouveau",
		MessageAr: "جديد",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPromotionNotFound)
}
