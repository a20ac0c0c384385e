package transport

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/goodnatureofminers/blockinsight7000-lineage/internal/lineage/model"
	"go.uber.org/zap"
)

const degradedMessage = "DB is locked"

// LineageHandler serves the lineage REST routes.
type LineageHandler struct {
	explorer Explorer
	logger   *zap.Logger
}

// NewLineageHandler returns a LineageHandler instance.
func NewLineageHandler(explorer Explorer, logger *zap.Logger) (*LineageHandler, error) {
	if explorer == nil {
		return nil, errors.New("explorer is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LineageHandler{explorer: explorer, logger: logger}, nil
}

// Register mounts the routes on r.
func (h *LineageHandler) Register(r gin.IRouter) {
	r.GET("/tx_data/:hash", h.Transaction)
	r.GET("/tx/:hash", h.TransactionGraph)
	r.GET("/block_coinbase/:height", h.BlockRewardGraph)
	r.GET("/dbstatus", h.StoreStatus)
}

// Transaction renders a single assembled transaction, or null.
func (h *LineageHandler) Transaction(c *gin.Context) {
	tx, err := h.explorer.GetTransaction(c.Request.Context(), c.Param("hash"))
	if err != nil {
		h.fail(c, "get transaction", err)
		return
	}
	if tx == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, tx)
}

// TransactionGraph renders the lineage graph of a transaction, or null.
func (h *LineageHandler) TransactionGraph(c *gin.Context) {
	graph, err := h.explorer.GetTransactionGraph(c.Request.Context(), c.Param("hash"))
	h.renderGraph(c, "get transaction graph", graph, err)
}

// BlockRewardGraph renders the lineage graph of the coinbase transaction at a height, or null.
func (h *LineageHandler) BlockRewardGraph(c *gin.Context) {
	height, err := strconv.ParseUint(c.Param("height"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "height must be a non-negative integer"})
		return
	}
	graph, err := h.explorer.GetBlockRewardGraph(c.Request.Context(), height)
	h.renderGraph(c, "get block reward graph", graph, err)
}

// StoreStatus renders the indexed block range.
func (h *LineageHandler) StoreStatus(c *gin.Context) {
	st, err := h.explorer.StoreStatus(c.Request.Context())
	if err != nil {
		h.fail(c, "store status", err)
		return
	}
	if st.Empty {
		c.JSON(http.StatusOK, gin.H{"min_block_height": nil, "max_block_height": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"min_block_height": st.MinBlockHeight,
		"max_block_height": st.MaxBlockHeight,
	})
}

func (h *LineageHandler) renderGraph(c *gin.Context, op string, graph *model.Graph, err error) {
	if err != nil {
		h.fail(c, op, err)
		return
	}
	if graph == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, graph)
}

func (h *LineageHandler) fail(c *gin.Context, op string, err error) {
	if errors.Is(err, model.ErrStoreUnavailable) {
		h.logger.Warn(op, zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": degradedMessage})
		return
	}
	h.logger.Error(op, zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
