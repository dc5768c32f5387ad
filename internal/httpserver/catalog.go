package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/feirafresca/storefront/internal/catalog"
	"github.com/feirafresca/storefront/internal/search"
	"github.com/feirafresca/storefront/internal/util"
	"github.com/feirafresca/storefront/pkg/logging"
)

type CatalogHTTP struct {
	Store *catalog.Store

	// ES is optional; when nil the search endpoint falls back to the
	// catalog's LIKE query.
	ES    *elasticsearch.Client
	Index string
}

func (h *CatalogHTTP) Home(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.home")

	products, err := h.Store.FeaturedProducts(ctx)
	if err != nil {
		l.Error("home_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	producers, err := h.Store.FeaturedProducers(ctx)
	if err != nil {
		l.Error("home_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"featured_products":  newProductViews(products),
		"featured_producers": newProducerViews(producers),
	})
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_products")

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	offset, limit := util.Paginate(page, size)

	total, products, err := h.Store.Products(ctx, catalog.ProductFilter{
		Category:   c.QueryParam("category"),
		ProducerID: c.QueryParam("producer_id"),
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total":    total,
		"products": newProductViews(products),
	})
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	product, err := h.Store.Product(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		l.Error("get_product_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	producer, err := h.Store.Producer(ctx, product.ProducerID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "producer not found")
		}
		l.Error("get_product_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	related, err := h.Store.Related(ctx, product)
	if err != nil {
		l.Error("get_product_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"product":  newProductView(*product),
		"producer": newProducerView(*producer),
		"related":  newProductViews(related),
	})
}

func (h *CatalogHTTP) GetProducers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_producers")

	producers, err := h.Store.Producers(ctx)
	if err != nil {
		l.Error("get_producers_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, newProducerViews(producers))
}

func (h *CatalogHTTP) GetProducer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_producer")

	producer, err := h.Store.Producer(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "producer not found")
		}
		l.Error("get_producer_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, newProducerView(*producer))
}

func (h *CatalogHTTP) GetCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Categories)
}

func (h *CatalogHTTP) Search(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search")

	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q required")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, limit := util.Paginate(page, size)

	if h.ES != nil {
		total, products, err := search.Search(ctx, h.ES, h.Index, q, from, limit)
		if err != nil {
			l.Error("search_error", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		return c.JSON(http.StatusOK, echo.Map{"total": total, "products": newProductViews(products)})
	}

	total, products, err := h.Store.SearchLike(ctx, q, from, limit)
	if err != nil {
		l.Error("search_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": newProductViews(products)})
}
