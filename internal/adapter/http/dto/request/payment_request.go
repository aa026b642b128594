package request

// CreatePaymentRequest opens the payment record for a service request. At
// most one of issue_id / emergency_service_id / other_issue selects the
// catalogue component added on top of the distance fare.

type CreatePaymentRequest struct {
	ServiceRequestRef  string  `json:"service_request_ref" binding:"required"`
	CustomerRef        string  `json:"customer_ref" binding:"required"`
	MechanicRef        string  `json:"mechanic_ref"`
	VehicleType        string  `json:"vehicle_type" binding:"required"`
	DistanceKm         float64 `json:"distance_km"`
	IssueID            string  `json:"issue_id"`
	EmergencyServiceID string  `json:"emergency_service_id"`
	OtherIssue         bool    `json:"other_issue"`
	IsEmergency        bool    `json:"is_emergency"`
	PaymentMethod      string  `json:"payment_method" binding:"required"`
}

// ConfirmPaymentRequest is the gateway success callback body.

type ConfirmPaymentRequest struct {
	GatewayPaymentRef string `json:"gateway_payment_ref" binding:"required"`
}

type FailPaymentRequest struct {
	Reason string `json:"reason"`
}

type CollectCODRequest struct {
	MechanicRef string `json:"mechanic_ref"`
}
