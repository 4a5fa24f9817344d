package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/voyago/tourism-service/internal/auth"
	"github.com/voyago/tourism-service/internal/domain"
	"github.com/voyago/tourism-service/internal/repository"
	apperrors "github.com/voyago/tourism-service/pkg/util"
)

// ReviewService manages tourist reviews. Authorship gates updates; deletes
// admit the author or a super admin.
type ReviewService struct {
	reviews    repository.ReviewRepository
	businesses repository.BusinessRepository
}

// NewReviewService builds the service.
func NewReviewService(reviews repository.ReviewRepository, businesses repository.BusinessRepository) *ReviewService {
	return &ReviewService{reviews: reviews, businesses: businesses}
}

// Create posts a review on a business by the calling tourist.
func (s *ReviewService) Create(ctx context.Context, touristID, businessID string, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", nil)
	}
	if _, err := s.businesses.GetByID(ctx, businessID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("business")
		}
		return nil, err
	}

	review := &domain.Review{
		BusinessID: businessID,
		TouristID:  touristID,
		Rating:     rating,
		Comment:    comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// Update edits a review; only its author may.
func (s *ReviewService) Update(ctx context.Context, caller *auth.Principal, reviewID string, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", nil)
	}

	review, err := s.get(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if caller.Role != domain.RoleTourist || review.TouristID != caller.ID {
		return nil, apperrors.NewForbidden("only the author may edit a review")
	}

	review.Rating = rating
	review.Comment = comment
	if err := s.reviews.Update(ctx, review); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("review")
		}
		return nil, err
	}
	return review, nil
}

// Delete removes a review. The author may delete their own; a super admin
// may delete any.
func (s *ReviewService) Delete(ctx context.Context, caller *auth.Principal, reviewID string) error {
	review, err := s.get(ctx, reviewID)
	if err != nil {
		return err
	}

	authorized := caller.Role == domain.RoleSuperAdmin ||
		(caller.Role == domain.RoleTourist && review.TouristID == caller.ID)
	if !authorized {
		return apperrors.NewForbidden("only the author or a platform admin may delete a review")
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("review")
		}
		return err
	}
	return nil
}

// ListByBusiness returns a page of reviews for a business.
func (s *ReviewService) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]domain.Review, error) {
	return s.reviews.ListByBusiness(ctx, businessID, limit, offset)
}

func (s *ReviewService) get(ctx context.Context, reviewID string) (*domain.Review, error) {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("review")
		}
		return nil, err
	}
	return review, nil
}
