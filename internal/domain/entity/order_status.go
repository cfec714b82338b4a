package entity

import "slices"

// OrderStatus represents the workflow state of an order. Statuses form an
// explicit finite set with an allowed-transition table; a transition not
// listed in the table is rejected before any request is issued.
type OrderStatus string

const (
	StatusDraft               OrderStatus = "Draft"
	StatusPlaced              OrderStatus = "Placed"
	StatusPending             OrderStatus = "Pending"
	StatusNotProcessed        OrderStatus = "Not Processed"
	StatusPaymentPending      OrderStatus = "Payment Pending"
	StatusPaymentConfirmed    OrderStatus = "Payment Confirmed"
	StatusOrderConfirmed      OrderStatus = "Order Confirmed"
	StatusConfirmed           OrderStatus = "Confirmed"
	StatusScheduled           OrderStatus = "Scheduled"
	StatusProcessing          OrderStatus = "Processing"
	StatusPrintReady          OrderStatus = "Print Ready"
	StatusUnshipped           OrderStatus = "Unshipped"
	StatusShipping            OrderStatus = "Shipping"
	StatusShipped             OrderStatus = "Shipped"
	StatusTransferred         OrderStatus = "Transferred to delivery partner"
	StatusOutForDelivery      OrderStatus = "Out for Delivery"
	StatusDelivered           OrderStatus = "Delivered"
	StatusReceived            OrderStatus = "Received"
	StatusReturnRequested     OrderStatus = "Return Requested"
	StatusRefundRequest       OrderStatus = "Refund request"
	StatusProcessingRefund    OrderStatus = "Processing Refund"
	StatusRefundSuccess       OrderStatus = "Refund Success"
	StatusCancelRequest       OrderStatus = "Cancel request"
	StatusCancelledRequest    OrderStatus = "CancelledRequest"
	StatusCancelled           OrderStatus = "Cancelled"
)

// allowedTransitions is the explicit transition relation. Keys without an
// entry are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusDraft:            {StatusPlaced, StatusPaymentPending, StatusCancelled},
	StatusPlaced:           {StatusPending, StatusPaymentPending, StatusCancelRequest, StatusCancelled},
	StatusPending:          {StatusPaymentPending, StatusProcessing, StatusCancelRequest, StatusCancelled},
	StatusNotProcessed:     {StatusPending, StatusProcessing, StatusCancelled},
	StatusPaymentPending:   {StatusPaymentConfirmed, StatusCancelRequest, StatusCancelled},
	StatusPaymentConfirmed: {StatusOrderConfirmed, StatusProcessing, StatusRefundRequest, StatusCancelRequest},
	StatusOrderConfirmed:   {StatusProcessing, StatusPrintReady, StatusScheduled, StatusCancelRequest},
	StatusConfirmed:        {StatusProcessing, StatusPrintReady, StatusScheduled, StatusCancelRequest},
	StatusScheduled:        {StatusProcessing, StatusPrintReady, StatusCancelled},
	StatusProcessing:       {StatusPrintReady, StatusUnshipped, StatusShipping, StatusCancelRequest},
	StatusPrintReady:       {StatusUnshipped, StatusShipping, StatusShipped},
	StatusUnshipped:        {StatusShipping, StatusShipped, StatusTransferred},
	StatusShipping:         {StatusShipped, StatusTransferred, StatusOutForDelivery},
	StatusShipped:          {StatusTransferred, StatusOutForDelivery, StatusDelivered},
	StatusTransferred:      {StatusOutForDelivery, StatusDelivered},
	StatusOutForDelivery:   {StatusDelivered, StatusReceived},
	StatusDelivered:        {StatusReceived, StatusReturnRequested},
	StatusReceived:         {StatusReturnRequested},
	StatusReturnRequested:  {StatusRefundRequest, StatusProcessingRefund},
	StatusRefundRequest:    {StatusProcessingRefund, StatusRefundSuccess},
	StatusProcessingRefund: {StatusRefundSuccess},
	StatusCancelRequest:    {StatusCancelledRequest, StatusCancelled, StatusProcessing},
	StatusCancelledRequest: {StatusCancelled, StatusProcessing},
}

// AllOrderStatuses lists every known status label.
var AllOrderStatuses = []OrderStatus{
	StatusDraft, StatusPlaced, StatusPending, StatusNotProcessed,
	StatusPaymentPending, StatusPaymentConfirmed, StatusOrderConfirmed,
	StatusConfirmed, StatusScheduled, StatusProcessing, StatusPrintReady,
	StatusUnshipped, StatusShipping, StatusShipped, StatusTransferred,
	StatusOutForDelivery, StatusDelivered, StatusReceived,
	StatusReturnRequested, StatusRefundRequest, StatusProcessingRefund,
	StatusRefundSuccess, StatusCancelRequest, StatusCancelledRequest,
	StatusCancelled,
}

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known label.
func (s OrderStatus) IsValid() bool {
	return slices.Contains(AllOrderStatuses, s)
}

// IsTerminal reports whether no transition leaves this status.
func (s OrderStatus) IsTerminal() bool {
	return len(allowedTransitions[s]) == 0
}

// CanTransitionTo reports whether the transition s -> next is allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return slices.Contains(allowedTransitions[s], next)
}

// Transitions returns the statuses reachable from s in one step.
func (s OrderStatus) Transitions() []OrderStatus {
	return slices.Clone(allowedTransitions[s])
}

// ParseOrderStatus converts a raw label to an OrderStatus, reporting whether
// the label is known.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(raw)

	return s, s.IsValid()
}
