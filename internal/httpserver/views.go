package httpserver

import (
	"github.com/shopspring/decimal"

	"github.com/feirafresca/storefront/internal/images"
	"github.com/feirafresca/storefront/internal/models"
	"github.com/feirafresca/storefront/internal/orders"
	"github.com/feirafresca/storefront/internal/pricing"
)

// View payloads resolve image keys to URLs and render money the storefront
// way ("R$ " prefix, two decimals) next to the raw values.

type productView struct {
	models.Product
	ImageURLs      []string `json:"image_urls"`
	PriceFormatted string   `json:"price_formatted"`
}

func newProductView(p models.Product) productView {
	return productView{
		Product:        p,
		ImageURLs:      images.URLs(p.Images),
		PriceFormatted: pricing.FormatBRL(decimal.NewFromFloat(p.Price)),
	}
}

func newProductViews(ps []models.Product) []productView {
	views := make([]productView, len(ps))
	for i, p := range ps {
		views[i] = newProductView(p)
	}
	return views
}

type producerView struct {
	models.Producer
	ImageURL string `json:"image_url"`
}

func newProducerView(p models.Producer) producerView {
	return producerView{Producer: p, ImageURL: images.URL(p.Image)}
}

func newProducerViews(ps []models.Producer) []producerView {
	views := make([]producerView, len(ps))
	for i, p := range ps {
		views[i] = newProducerView(p)
	}
	return views
}

type orderItemView struct {
	models.OrderItem
	ProductName    string `json:"product_name"`
	PriceFormatted string `json:"price_formatted"`
}

type orderView struct {
	ID             string          `json:"id"`
	ProducerID     string          `json:"producer_id"`
	CustomerName   string          `json:"customer_name"`
	Date           string          `json:"date"`
	DateFormatted  string          `json:"date_formatted"`
	Total          float64         `json:"total"`
	TotalFormatted string          `json:"total_formatted"`
	Status         string          `json:"status"`
	StatusLabel    string          `json:"status_label"`
	Items          []orderItemView `json:"items"`
}

func newOrderView(o models.Order, products map[string]models.Product) orderView {
	items := make([]orderItemView, len(o.Items))
	for i, it := range o.Items {
		items[i] = orderItemView{
			OrderItem:      it,
			ProductName:    products[it.ProductID].Name,
			PriceFormatted: pricing.FormatBRL(decimal.NewFromFloat(it.Price)),
		}
	}
	return orderView{
		ID:             o.ID,
		ProducerID:     o.ProducerID,
		CustomerName:   o.CustomerName,
		Date:           o.Date,
		DateFormatted:  orders.FormatDateBR(o.Date),
		Total:          o.Total,
		TotalFormatted: pricing.FormatBRL(decimal.NewFromFloat(o.Total)),
		Status:         o.Status,
		StatusLabel:    orders.Label(o.Status),
		Items:          items,
	}
}

type cartLineView struct {
	Product            productView `json:"product"`
	Quantity           int         `json:"quantity"`
	LineTotal          float64     `json:"line_total"`
	LineTotalFormatted string      `json:"line_total_formatted"`
}

type quoteView struct {
	Items             []cartLineView `json:"items"`
	TotalItems        int            `json:"total_items"`
	Subtotal          float64        `json:"subtotal"`
	SubtotalFormatted string         `json:"subtotal_formatted"`
	Shipping          float64        `json:"shipping"`
	ShippingFormatted string         `json:"shipping_formatted"`
	FreeShipping      bool           `json:"free_shipping"`
	Total             float64        `json:"total"`
	TotalFormatted    string         `json:"total_formatted"`
}

func newQuoteView(q pricing.Quote) quoteView {
	v := quoteView{
		Items:             []cartLineView{},
		TotalItems:        q.TotalItems,
		Subtotal:          q.Subtotal.InexactFloat64(),
		SubtotalFormatted: pricing.FormatBRL(q.Subtotal),
		Shipping:          q.Shipping.InexactFloat64(),
		FreeShipping:      q.FreeShipping,
		Total:             q.Total.InexactFloat64(),
		TotalFormatted:    pricing.FormatBRL(q.Total),
	}
	if q.FreeShipping {
		v.ShippingFormatted = "Grátis"
	} else {
		v.ShippingFormatted = pricing.FormatBRL(q.Shipping)
	}
	for _, line := range q.Lines {
		v.Items = append(v.Items, cartLineView{
			Product:            newProductView(line.Product),
			Quantity:           line.Quantity,
			LineTotal:          line.LineTotal.InexactFloat64(),
			LineTotalFormatted: pricing.FormatBRL(line.LineTotal),
		})
	}
	return v
}
