package clients

//go:generate easyjson -all dto.go

import "time"

type (
	//easyjson:json
	LoginRequestDto struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	//easyjson:json
	RegisterRequestDto struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}
	//easyjson:json
	AuthResponseDto struct {
		AccessToken string `json:"access_token"`
	}
	//easyjson:json
	ProfileDto struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	}
	//easyjson:json
	RateTierDto struct {
		Volume int     `json:"volume"`
		Price  float64 `json:"price"`
	}
	//easyjson:json
	SupplierDto struct {
		ID              string        `json:"id"`
		Name            string        `json:"name"`
		Location        string        `json:"location"`
		Address         string        `json:"address"`
		Capacity        int           `json:"capacity"`
		AvailableVolume int           `json:"available_volume"`
		IsOnline        bool          `json:"is_online"`
		Rates           []RateTierDto `json:"rates"`
		ContactNumber   string        `json:"contact_number"`
	}
	//easyjson:json
	SupplierDtoSlice []SupplierDto
	//easyjson:json
	SupplierContactDto struct {
		ContactNumber string `json:"contact_number"`
	}
	//easyjson:json
	AddressDto struct {
		ID        string `json:"id"`
		UserID    string `json:"user_id"`
		Title     string `json:"title"`
		Address   string `json:"address"`
		Location  string `json:"location"`
		IsDefault bool   `json:"is_default"`
	}
	//easyjson:json
	AddressDtoSlice []AddressDto
	//easyjson:json
	AddAddressRequestDto struct {
		UserID    string  `json:"p_user_id"`
		Title     string  `json:"p_title"`
		Address   string  `json:"p_address"`
		Latitude  float64 `json:"p_latitude"`
		Longitude float64 `json:"p_longitude"`
		IsDefault bool    `json:"p_is_default"`
	}
	//easyjson:json
	WalletBalanceDto struct {
		Balance float64 `json:"balance"`
	}
	//easyjson:json
	TopUpRequestDto struct {
		UserID string  `json:"p_user_id"`
		Amount float64 `json:"p_amount"`
	}
	//easyjson:json
	CreateDeliveryRequestDto struct {
		UserID         string  `json:"p_user_id"`
		ContainerID    string  `json:"p_container_id"`
		Volume         int     `json:"p_volume"`
		Amount         float64 `json:"p_amount"`
		Address        string  `json:"p_address"`
		Location       string  `json:"p_location"`
		PaymentMethod  string  `json:"p_payment_method"`
		PaymentDetails string  `json:"p_payment_details"`
	}
	//easyjson:json
	CreateDeliveryResponseDto struct {
		OrderID string `json:"order_id"`
	}
	//easyjson:json
	CancelDeliveryRequestDto struct {
		OrderID string `json:"p_order_id"`
	}
	//easyjson:json
	DeliveryDto struct {
		ID              string    `json:"id"`
		UserID          string    `json:"user_id"`
		ContainerID     string    `json:"container_id"`
		Volume          int       `json:"volume"`
		Amount          float64   `json:"amount"`
		Address         string    `json:"address"`
		Location        string    `json:"location"`
		PaymentMethod   string    `json:"payment_method"`
		PaymentDetails  string    `json:"payment_details"`
		Status          string    `json:"status"`
		SupplierContact string    `json:"supplier_contact"`
		CreatedAt       time.Time `json:"created_at"`
	}
	//easyjson:json
	DeliveryDtoSlice []DeliveryDto
	//easyjson:json
	ChatMessagesRequestDto struct {
		DeliveryID string `json:"p_delivery_id"`
	}
	//easyjson:json
	SendChatMessageRequestDto struct {
		DeliveryID string `json:"p_delivery_id"`
		Message    string `json:"p_message"`
	}
	//easyjson:json
	ChatMessageDto struct {
		ID         string    `json:"id"`
		DeliveryID string    `json:"delivery_id"`
		IsSupplier bool      `json:"is_supplier"`
		Message    string    `json:"message"`
		CreatedAt  time.Time `json:"created_at"`
	}
	//easyjson:json
	ChatMessageDtoSlice []ChatMessageDto
	//easyjson:json
	GatewayErrorDto struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	}
)
