package v1

// resource is the display name used in response messages.
type resource string

const (
	todoResource       resource = "Todo"
	userResource       resource = "User"
	categoryResource   resource = "Category"
	todoLogResource    resource = "Todo Log"
	todoDetailResource resource = "Todo Detail"
)

const (
	actionCreated = "created"
	actionUpdated = "updated"
	actionDeleted = "deleted"
)

func (r resource) done(action string) string {
	return string(r) + " " + action + " successfully"
}

func (r resource) notFound() string {
	return string(r) + " not found"
}

type messageResponse struct {
	Message string `json:"message"`
}

func newMessageResponse(message string) messageResponse {
	return messageResponse{Message: message}
}

type createdResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

func newCreatedResponse(r resource, id int64) createdResponse {
	return createdResponse{
		Message: r.done(actionCreated),
		ID:      id,
	}
}
