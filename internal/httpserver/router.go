package httpserver

import (
	"github.com/labstack/echo/v4"
)

type Deps struct {
	Catalog  *CatalogHTTP
	Cart     *CartHTTP
	Checkout *CheckoutHTTP
	Producer *ProducerHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(200) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(200) })

	v1 := e.Group("/api/v1", Session())

	v1.GET("/home", d.Catalog.Home)
	v1.GET("/products", d.Catalog.GetProducts)
	v1.GET("/products/:id", d.Catalog.GetProduct)
	v1.GET("/producers", d.Catalog.GetProducers)
	v1.GET("/producers/:id", d.Catalog.GetProducer)
	v1.GET("/categories", d.Catalog.GetCategories)
	v1.GET("/search", d.Catalog.Search)

	cart := v1.Group("/cart")
	cart.GET("", d.Cart.GetCart)
	cart.POST("", d.Cart.AddToCart)
	cart.PATCH("/:productID", d.Cart.UpdateQuantity)
	cart.DELETE("/:productID", d.Cart.RemoveItem)
	cart.DELETE("", d.Cart.ClearCart)

	co := v1.Group("/checkout")
	co.GET("", d.Checkout.GetState)
	co.POST("/continue", d.Checkout.Continue)
	co.POST("/back", d.Checkout.Back)
	co.POST("/confirm", d.Checkout.Confirm)

	producer := v1.Group("/producer")
	producer.GET("/:id/dashboard", d.Producer.Dashboard)
	producer.GET("/:id/orders", d.Producer.GetOrders)
	producer.GET("/:id/products", d.Producer.GetProducts)
	producer.PATCH("/orders/:id/status", d.Producer.UpdateOrderStatus)
}
