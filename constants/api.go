package constants

import "time"

const DefaultBaseURL = "http://localhost:3001/api"

const (
	RequestTimeout = 10 * time.Second
	UploadTimeout  = 30 * time.Second
)

// Auth endpoints
const (
	EndpointLogin    = "/auth/login"
	EndpointRegister = "/auth/register"
	EndpointLogout   = "/auth/logout"
	EndpointRefresh  = "/auth/refresh"
	EndpointProfile  = "/auth/profile"
)

// Product and category endpoints
const (
	EndpointProducts           = "/products"
	EndpointProductByID        = "/products/%s"
	EndpointProductsByCategory = "/products/category/%s"
	EndpointCategories         = "/categories"
)

// Order endpoints
const (
	EndpointOrders         = "/orders"
	EndpointOrderByID      = "/orders/%s"
	EndpointOrdersByStatus = "/orders/status/%s"
	EndpointKitchenOrders  = "/orders/kitchen"
)

// Restaurant endpoints
const (
	EndpointRestaurantInfo   = "/restaurant"
	EndpointRestaurantStatus = "/restaurant/status"
	EndpointRestaurantHours  = "/restaurant/hours"
)

// Report endpoints
const (
	EndpointSalesReport    = "/reports/sales"
	EndpointProductsReport = "/reports/products"
	EndpointOrdersReport   = "/reports/orders"
)
