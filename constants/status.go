package constants

// Order status
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderPreparing = "preparing"
	OrderReady     = "ready"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Restaurant status
const (
	RestaurantOpen        = "open"
	RestaurantClosed      = "closed"
	RestaurantPaused      = "paused"
	RestaurantMaintenance = "maintenance"
)

// Product status
const (
	ProductActive       = "active"
	ProductInactive     = "inactive"
	ProductOutOfStock   = "out_of_stock"
	ProductDiscontinued = "discontinued"
)

// Delivery status
const (
	DeliveryPending  = "pending"
	DeliveryAssigned = "assigned"
	DeliveryOnTheWay = "on_the_way"
)

// User roles
const (
	RoleAdmin    = "admin"
	RoleKitchen  = "kitchen"
	RoleDelivery = "delivery"
	RoleClient   = "client"
)

// Delivery types
const (
	DeliveryTypeLocal    = "local"
	DeliveryTypeTakeaway = "takeaway"
	DeliveryTypeDelivery = "delivery"
)

// Payment status
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentFailed   = "failed"
	PaymentRefunded = "refunded"
)

var orderStatusLabels = map[string]string{
	OrderPending:   "Pending",
	OrderConfirmed: "Confirmed",
	OrderPreparing: "Preparing",
	OrderReady:     "Ready",
	OrderDelivered: "Delivered",
	OrderCancelled: "Cancelled",
}

var restaurantStatusLabels = map[string]string{
	RestaurantOpen:        "Open",
	RestaurantClosed:      "Closed",
	RestaurantPaused:      "Temporarily paused",
	RestaurantMaintenance: "Under maintenance",
}

func OrderStatusLabel(status string) string {
	if label, ok := orderStatusLabels[status]; ok {
		return label
	}
	return status
}

func RestaurantStatusLabel(status string) string {
	if label, ok := restaurantStatusLabels[status]; ok {
		return label
	}
	return status
}

func IsValidOrderStatus(status string) bool {
	_, ok := orderStatusLabels[status]
	return ok
}

func IsValidDeliveryType(t string) bool {
	return t == DeliveryTypeLocal || t == DeliveryTypeTakeaway || t == DeliveryTypeDelivery
}
