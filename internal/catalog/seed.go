package catalog

import "github.com/feirafresca/storefront/internal/models"

// Categories offered by the storefront filter. "Todas" selects everything.
var Categories = []string{
	"Todas",
	"Hortaliças",
	"Frutas",
	"Ervas e Temperos",
	"Produtos Artesanais",
}

var seedProducers = []models.Producer{
	{
		ID:       "1",
		Name:     "Sítio Raízes da Terra",
		Bio:      "Produção orgânica familiar há três gerações. Cultivamos com amor e respeito à natureza, oferecendo vegetais frescos e saudáveis.",
		Location: "Distrito de Maravilha, Londrina",
		Image:    "farmer-1",
		Featured: true,
	},
	{
		ID:       "2",
		Name:     "Fazenda Boa Vista",
		Bio:      "Especializada em frutas da estação e mel artesanal. Nossa missão é levar o sabor autêntico do campo para sua mesa.",
		Location: "Zona Rural, Londrina",
		Image:    "farmer-2",
		Featured: true,
	},
	{
		ID:       "3",
		Name:     "Horta do Vale",
		Bio:      "Cultivo sustentável de hortaliças e ervas aromáticas. Cada produto é colhido no ponto perfeito de maturação.",
		Location: "Distrito de Espírito Santo, Londrina",
		Image:    "farmer-3",
		Featured: false,
	},
}

var seedProducts = []models.Product{
	{
		ID:          "1",
		Name:        "Tomate Cereja Orgânico",
		Description: "Tomates cereja cultivados sem agrotóxicos, com sabor intenso e doçura natural. Perfeitos para saladas e aperitivos.",
		Price:       12.90,
		Images:      []string{"tomato", "vegetables"},
		Category:    "Hortaliças",
		ProducerID:  "1",
		Stock:       45,
		Unit:        "bandeja 250g",
		Featured:    true,
	},
	{
		ID:          "2",
		Name:        "Alface Crespa",
		Description: "Alface fresca colhida pela manhã. Folhas verdes e crocantes, ideais para saladas nutritivas.",
		Price:       4.50,
		Images:      []string{"vegetables", "salad"},
		Category:    "Hortaliças",
		ProducerID:  "1",
		Stock:       60,
		Unit:        "unidade",
		Featured:    true,
	},
	{
		ID:          "3",
		Name:        "Mel Silvestre",
		Description: "Mel puro e artesanal, produzido por abelhas em ambiente de mata preservada. Rico em nutrientes e sabor incomparável.",
		Price:       28.00,
		Images:      []string{"honey", "market"},
		Category:    "Produtos Artesanais",
		ProducerID:  "2",
		Stock:       20,
		Unit:        "pote 500g",
		Featured:    true,
	},
	{
		ID:          "4",
		Name:        "Morango Orgânico",
		Description: "Morangos frescos e suculentos, cultivados organicamente. Doçura natural e aroma irresistível.",
		Price:       15.90,
		Images:      []string{"strawberries", "berries"},
		Category:    "Frutas",
		ProducerID:  "2",
		Stock:       30,
		Unit:        "bandeja 500g",
		Featured:    true,
	},
	{
		ID:          "5",
		Name:        "Manjericão Fresco",
		Description: "Manjericão cultivado com técnicas orgânicas. Aroma intenso, perfeito para temperar seus pratos.",
		Price:       3.50,
		Images:      []string{"herbs", "vegetables"},
		Category:    "Ervas e Temperos",
		ProducerID:  "3",
		Stock:       40,
		Unit:        "maço",
		Featured:    false,
	},
	{
		ID:          "6",
		Name:        "Cenoura Orgânica",
		Description: "Cenouras frescas e crocantes, cultivadas sem agrotóxicos. Ricas em vitamina A e sabor.",
		Price:       6.90,
		Images:      []string{"vegetables", "market"},
		Category:    "Hortaliças",
		ProducerID:  "1",
		Stock:       50,
		Unit:        "kg",
		Featured:    false,
	},
}

var seedOrders = []models.Order{
	{
		ID:         "ORD-001",
		ProducerID: "1",
		Items: []models.OrderItem{
			{ProductID: "1", Quantity: 2, Price: 12.90},
			{ProductID: "2", Quantity: 3, Price: 4.50},
		},
		Total:        39.30,
		Status:       models.OrderStatusPending,
		CustomerName: "Maria Silva",
		Date:         "2025-10-24",
	},
	{
		ID:         "ORD-002",
		ProducerID: "1",
		Items: []models.OrderItem{
			{ProductID: "6", Quantity: 2, Price: 6.90},
		},
		Total:        13.80,
		Status:       models.OrderStatusPreparing,
		CustomerName: "João Santos",
		Date:         "2025-10-23",
	},
	{
		ID:         "ORD-003",
		ProducerID: "1",
		Items: []models.OrderItem{
			{ProductID: "1", Quantity: 1, Price: 12.90},
			{ProductID: "2", Quantity: 2, Price: 4.50},
			{ProductID: "6", Quantity: 1, Price: 6.90},
		},
		Total:        28.80,
		Status:       models.OrderStatusShipped,
		CustomerName: "Ana Costa",
		Date:         "2025-10-22",
	},
}
