package backend

import (
	"time"

	"backoffice/internal/domain/entity"
)

// Wire models mirror the backend's MongoDB-flavoured JSON documents
// (string `_id`, camelCase fields) and convert into domain entities at the
// repository boundary.

type productModel struct {
	ID              string    `json:"_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Subcategory     string    `json:"subcategory"`
	Slug            string    `json:"slug"`
	Description     string    `json:"description"`
	Size            string    `json:"size"`
	Color           string    `json:"color"`
	MOQ             int       `json:"moq"`
	OriginalPrice   float64   `json:"originalPrice"`
	DiscountedPrice float64   `json:"discountedPrice"`
	Quantity        int       `json:"quantity"`
	PaperSizes      string    `json:"paperSizes"`
	PaperNames      string    `json:"paperNames"`
	Colors          string    `json:"colors"`
	Quantities      string    `json:"quantities"`
	Images          []string  `json:"images"`
	Published       bool      `json:"published"`
	Status          string    `json:"status"`
	Discount        float64   `json:"discount"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (m *productModel) toEntity() *entity.Product {
	return &entity.Product{
		ID:              m.ID,
		Name:            m.Name,
		Category:        m.Category,
		Subcategory:     m.Subcategory,
		Slug:            m.Slug,
		Description:     m.Description,
		Size:            m.Size,
		Color:           m.Color,
		MOQ:             m.MOQ,
		OriginalPrice:   m.OriginalPrice,
		DiscountedPrice: m.DiscountedPrice,
		Quantity:        m.Quantity,
		PaperSizes:      m.PaperSizes,
		PaperNames:      m.PaperNames,
		Colors:          m.Colors,
		Quantities:      m.Quantities,
		Images:          m.Images,
		Published:       m.Published,
		Status:          entity.ProductStatus(m.Status),
		Discount:        m.Discount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

type orderLineModel struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type orderModel struct {
	ID             string           `json:"_id"`
	OrderType      string           `json:"orderType"`
	Currency       string           `json:"currency"`
	Products       []orderLineModel `json:"products"`
	OrderStatus    string           `json:"orderStatus"`
	IsScheduled    bool             `json:"isScheduled"`
	IsCancelled    bool             `json:"isCancelled"`
	PaidAt         *time.Time       `json:"paidAt"`
	CreatedAt      time.Time        `json:"createdAt"`
	DeliveryCharge float64          `json:"deliveryCharge"`
}

func (m *orderModel) toEntity() *entity.Order {
	lines := make([]entity.OrderLine, 0, len(m.Products))
	for _, line := range m.Products {
		lines = append(lines, entity.OrderLine{
			ProductID: line.Product,
			Quantity:  line.Quantity,
		})
	}

	return &entity.Order{
		ID:             m.ID,
		OrderType:      m.OrderType,
		Currency:       m.Currency,
		Lines:          lines,
		Status:         entity.OrderStatus(m.OrderStatus),
		IsScheduled:    m.IsScheduled,
		IsCancelled:    m.IsCancelled,
		PaidAt:         m.PaidAt,
		CreatedAt:      m.CreatedAt,
		DeliveryCharge: m.DeliveryCharge,
	}
}

type orderListModel struct {
	Orders                      []orderModel `json:"orders"`
	TotalOrders                 int          `json:"totalOrders"`
	TotalOrdersThisMonth        int          `json:"totalOrdersThisMonth"`
	TotalOrdersToday            int          `json:"totalOrdersToday"`
	PrintReadyOrdersCount       int          `json:"printReadyOrdersCount"`
	PaymentConfirmedOrdersCount int          `json:"paymentConfirmedOrdersCount"`
	PaymentPendingOrdersCount   int          `json:"paymentPendingOrdersCount"`
}

func (m *orderListModel) toEntity() *entity.OrderList {
	orders := make([]entity.Order, 0, len(m.Orders))
	for i := range m.Orders {
		orders = append(orders, *m.Orders[i].toEntity())
	}

	return &entity.OrderList{
		Orders: orders,
		Summary: entity.OrderSummary{
			TotalOrders:           m.TotalOrders,
			TotalOrdersThisMonth:  m.TotalOrdersThisMonth,
			TotalOrdersToday:      m.TotalOrdersToday,
			PrintReadyCount:       m.PrintReadyOrdersCount,
			PaymentConfirmedCount: m.PaymentConfirmedOrdersCount,
			PaymentPendingCount:   m.PaymentPendingOrdersCount,
		},
	}
}

type userModel struct {
	ID          string    `json:"_id"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Role        string    `json:"role"`
	Status      string    `json:"Status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (m *userModel) toEntity() *entity.User {
	return &entity.User{
		ID:          m.ID,
		FullName:    m.FullName,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Role:        entity.Role(m.Role),
		Status:      entity.AccountStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

type categoryModel struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parent"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *categoryModel) toEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		ParentID:  m.ParentID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type credentialsModel struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type messageModel struct {
	Message string `json:"message"`
}
