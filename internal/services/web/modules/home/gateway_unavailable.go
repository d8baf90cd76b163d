package home

import (
	"context"

	"github.com/louisbranch/mindmap.space/internal/mindmap/element"
	apperrors "github.com/louisbranch/mindmap.space/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) LoadElements(context.Context) (element.Sequence, error) {
	return element.Sequence{}, apperrors.E(apperrors.KindUnavailable, "element source is not configured")
}
