package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"smokyhost/service"
)

type GuestHandler struct {
	service *service.GuestService
}

func NewGuestHandler(service *service.GuestService) *GuestHandler {
	return &GuestHandler{service: service}
}

func (h *GuestHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	chats := h.service.Chats()
	ListResponse(w, chats, len(chats))
}

func (h *GuestHandler) ListMessages(w http.ResponseWriter, r *http.Request) {

	msgs, err := h.service.Messages(mux.Vars(r)["id"])
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	ListResponse(w, msgs, len(msgs))
}

func (h *GuestHandler) SendMessage(w http.ResponseWriter, r *http.Request) {

	var req SendMessageRequest
	if errs := ReadAndValidateRequest(w, r, &req); errs != nil {
		ValidationResponse(w, errs)
		return
	}

	msg, err := h.service.Send(mux.Vars(r)["id"], req.Text)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	CreatedResponse(w, msg)
}

// DraftReply suggests a reply to the latest guest message. The draft is not
// posted to the chat.
func (h *GuestHandler) DraftReply(w http.ResponseWriter, r *http.Request) {

	draft, err := h.service.Draft(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	SuccessResponse(w, draft)
}
