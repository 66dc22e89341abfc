package handlers

import (
	"net/http"

	"cpq_quote/internal/adapter/http/dto/request"
	"cpq_quote/internal/adapter/http/dto/response"
	"cpq_quote/internal/domain/entities"
	"cpq_quote/internal/usecase"
	"cpq_quote/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTariffQuery = pkg.NewDomainErrorSimple("INVALID_TARIFF_QUERY", "unit_price, qty and delivery_days must be numbers", http.StatusBadRequest)

// TariffHandler serves stateless tariff previews.
type TariffHandler struct {
	usecase usecase.ITariffUseCase
}

func NewTariffHandler(uc usecase.ITariffUseCase) *TariffHandler {
	return &TariffHandler{usecase: uc}
}

// GetTariffs godoc
// @Summary      Preview tariffs
// @Description  Prices the standard, urgent and strategic variants for a unit price, quantity and delivery days.
// @Tags         tariffs
// @Produce      json
// @Param        unit_price     query  string  true   "Unit price"
// @Param        qty            query  int     false  "Quantity"
// @Param        delivery_days  query  int     false  "Requested delivery days"
// @Success      200  {object}  response.TariffQuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /tariffs [get]
func (h *TariffHandler) GetTariffs(c *gin.Context) {
	var query request.TariffQueryRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(errInvalidTariffQuery.HTTPStatus, errInvalidTariffQuery.ToHTTPError())
		return
	}
	in, err := query.ResolvePricingInput()
	if err != nil {
		c.JSON(errInvalidTariffQuery.HTTPStatus, errInvalidTariffQuery.ToHTTPError())
		return
	}

	q := h.usecase.Quote(c.Request.Context(), in, entities.NewOverrideSet())
	c.JSON(http.StatusOK, response.FromTariffQuote(q))
}
