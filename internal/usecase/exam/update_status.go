package exam

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/controle-exames/internal/domain/exam"
)

type UpdateStatus struct {
	gw domain.Gateway
}

func NewUpdateStatus(gw domain.Gateway) *UpdateStatus {
	return &UpdateStatus{gw: gw}
}

// Execute stores status verbatim on the user's exam. It reports whether a
// row was changed; an unknown, foreign or malformed id is not an error.
func (uc *UpdateStatus) Execute(
	ctx context.Context,
	userID uuid.UUID,
	examID string,
	status domain.Status,
) (bool, error) {

	id, err := uuid.Parse(examID)
	if err != nil {
		return false, nil
	}

	n, err := uc.gw.UpdateExams(ctx,
		domain.OwnedBy(userID).Where(domain.ColID, id),
		map[string]any{domain.ColStatus: string(status)},
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
