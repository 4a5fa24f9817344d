package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/voyago/tourism-service/internal/auth"
	"github.com/voyago/tourism-service/internal/domain"
	"github.com/voyago/tourism-service/internal/repository"
	"github.com/voyago/tourism-service/internal/service"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

type stubReviewRepo struct {
	byID   map[string]*domain.Review
	nextID int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{byID: map[string]*domain.Review{}}
}

func (r *stubReviewRepo) Create(_ context.Context, review *domain.Review) error {
	r.nextID++
	review.ID = fmt.Sprintf("review-%d", r.nextID)
	r.byID[review.ID] = review
	return nil
}

func (r *stubReviewRepo) Update(_ context.Context, review *domain.Review) error {
	if _, ok := r.byID[review.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.byID[review.ID] = review
	return nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *stubReviewRepo) GetByID(_ context.Context, id string) (*domain.Review, error) {
	review, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *review
	return &copied, nil
}

func (r *stubReviewRepo) ListByBusiness(_ context.Context, businessID string, _, _ int) ([]domain.Review, error) {
	var result []domain.Review
	for _, review := range r.byID {
		if review.BusinessID == businessID {
			result = append(result, *review)
		}
	}
	return result, nil
}

type stubBusinessRepo struct {
	byID map[string]*domain.Business
}

func newStubBusinessRepo(ids ...string) *stubBusinessRepo {
	r := &stubBusinessRepo{byID: map[string]*domain.Business{}}
	for _, id := range ids {
		r.byID[id] = &domain.Business{ID: id, Name: "Business " + id}
	}
	return r
}

func (r *stubBusinessRepo) Create(_ context.Context, business *domain.Business) error {
	business.ID = fmt.Sprintf("biz-%d", len(r.byID)+1)
	r.byID[business.ID] = business
	return nil
}

func (r *stubBusinessRepo) Update(_ context.Context, business *domain.Business) error {
	if _, ok := r.byID[business.ID]; !ok {
		return pgx.ErrNoRows
	}
	r.byID[business.ID] = business
	return nil
}

func (r *stubBusinessRepo) GetByID(_ context.Context, id string) (*domain.Business, error) {
	business, ok := r.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return business, nil
}

func (r *stubBusinessRepo) List(_ context.Context, _ repository.BusinessFilter) ([]domain.Business, error) {
	var result []domain.Business
	for _, business := range r.byID {
		result = append(result, *business)
	}
	return result, nil
}

func newReviewFixture() (*service.ReviewService, *stubReviewRepo) {
	reviews := newStubReviewRepo()
	return service.NewReviewService(reviews, newStubBusinessRepo("biz-1")), reviews
}

func TestCreateReview(t *testing.T) {
	svc, _ := newReviewFixture()
	ctx := context.Background()

	review, err := svc.Create(ctx, "t1", "biz-1", 4, "great tour")
	require.NoError(t, err)
	require.NotEmpty(t, review.ID)
	require.Equal(t, "t1", review.TouristID)

	_, err = svc.Create(ctx, "t1", "biz-1", 6, "off the scale")
	require.True(t, apperrors.HasCode(err, apperrors.CodeValidationFailed), "got %v", err)

	_, err = svc.Create(ctx, "t1", "biz-missing", 4, "where is it")
	require.True(t, apperrors.HasCode(err, apperrors.CodeNotFound), "got %v", err)
}

func TestUpdateReviewAuthorOnly(t *testing.T) {
	svc, _ := newReviewFixture()
	ctx := context.Background()

	review, err := svc.Create(ctx, "t1", "biz-1", 4, "great tour")
	require.NoError(t, err)

	_, err = svc.Update(ctx, &auth.Principal{ID: "t2", Role: domain.RoleTourist}, review.ID, 1, "hijacked")
	require.True(t, apperrors.HasCode(err, apperrors.CodeForbidden), "got %v", err)

	// Even a super admin does not edit someone else's words.
	_, err = svc.Update(ctx, &auth.Principal{ID: "s1", Role: domain.RoleSuperAdmin}, review.ID, 1, "hijacked")
	require.True(t, apperrors.HasCode(err, apperrors.CodeForbidden), "got %v", err)

	updated, err := svc.Update(ctx, &auth.Principal{ID: "t1", Role: domain.RoleTourist}, review.ID, 5, "even better")
	require.NoError(t, err)
	require.Equal(t, 5, updated.Rating)
	require.Equal(t, "even better", updated.Comment)
}

func TestDeleteReview(t *testing.T) {
	svc, reviews := newReviewFixture()
	ctx := context.Background()

	review, err := svc.Create(ctx, "t1", "biz-1", 4, "great tour")
	require.NoError(t, err)

	err = svc.Delete(ctx, &auth.Principal{ID: "t2", Role: domain.RoleTourist}, review.ID)
	require.True(t, apperrors.HasCode(err, apperrors.CodeForbidden), "got %v", err)

	err = svc.Delete(ctx, &auth.Principal{ID: "s1", Role: domain.RoleSuperAdmin}, review.ID)
	require.NoError(t, err)
	require.Empty(t, reviews.byID)

	err = svc.Delete(ctx, &auth.Principal{ID: "s1", Role: domain.RoleSuperAdmin}, review.ID)
	require.True(t, apperrors.HasCode(err, apperrors.CodeNotFound), "got %v", err)
}
