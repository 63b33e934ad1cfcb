package shared

// OperationResult carries the outcome of a service operation. Exactly one of
// Success or Failure is set for a completed operation. Failure holds a domain
// failure payload (publish failure event, ack the message); infrastructure
// errors travel on the error return of the operation instead.
type OperationResult struct {
	Success any
	Failure any
}

// SuccessResult wraps a success payload.
func SuccessResult(payload any) OperationResult {
	return OperationResult{Success: payload}
}

// FailureResult wraps a domain failure payload.
func FailureResult(payload any) OperationResult {
	return OperationResult{Failure: payload}
}

// MapToHandlerResults converts the result into handler results destined for
// the given success or failure topic. An empty result maps to no messages.
func (r OperationResult) MapToHandlerResults(successTopic, failureTopic string) []HandlerResult {
	switch {
	case r.Success != nil:
		return []HandlerResult{{Topic: successTopic, Payload: r.Success}}
	case r.Failure != nil:
		return []HandlerResult{{Topic: failureTopic, Payload: r.Failure}}
	default:
		return nil
	}
}
