package transport

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	blockinsight7000v1 "github.com/goodnatureofminers/blockinsight7000-proto/pkg/blockinsight7000/v1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ExplorerHandler implements ExplorerServiceServer.
type ExplorerHandler struct {
	blockinsight7000v1.UnimplementedExplorerServiceServer

	explorer Explorer
	logger   *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(explorer Explorer, logger *zap.Logger) (blockinsight7000v1.ExplorerServiceServer, error) {
	if explorer == nil {
		return nil, errors.New("explorer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExplorerHandler{explorer: explorer, logger: logger}, nil
}

// Health reports healthy when the lineage store answers its block range query.
func (h *ExplorerHandler) Health(ctx context.Context, _ *blockinsight7000v1.HealthRequest) (*blockinsight7000v1.HealthResponse, error) {
	st, err := h.explorer.StoreStatus(ctx)
	if err != nil {
		if errors.Is(err, model.ErrStoreUnavailable) {
			return nil, status.Error(codes.Unavailable, "lineage store is locked")
		}
		h.logger.Error("store status", zap.Error(err))
		return nil, status.Error(codes.Internal, "lineage store status failed")
	}

	return &blockinsight7000v1.HealthResponse{
		Status:      blockinsight7000v1.HealthStatus_HEALTH_STATUS_HEALTHY,
		Description: describe(st),
	}, nil
}

func describe(st model.StoreStatus) string {
	if st.Empty {
		return "no blocks indexed"
	}
	return fmt.Sprintf("blocks %d-%d indexed", st.MinBlockHeight, st.MaxBlockHeight)
}
