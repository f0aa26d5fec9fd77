package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"redmedicos-be/internal/chat"
	"redmedicos-be/internal/lead"
	"redmedicos-be/internal/utils"
)

func (h *Handlers) submitLead(w http.ResponseWriter, r *http.Request) {
	var l lead.Lead
	if err := json.NewDecoder(r.Body).Decode(&l); err != nil {
		utils.WriteJSONError(w, "잘못된 요청 형식입니다", http.StatusBadRequest)
		return
	}

	id, err := h.Leads.Submit(r.Context(), l)
	if err != nil {
		switch {
		case errors.Is(err, lead.ErrMissingFields):
			utils.WriteJSONError(w, "이름과 연락처를 입력해주세요", http.StatusBadRequest)
		case errors.Is(err, lead.ErrPrivacyRequired):
			utils.WriteJSONError(w, "개인정보 수집에 동의해주세요", http.StatusBadRequest)
		default:
			utils.WriteJSONError(w, "상담 신청 접수에 실패했습니다", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (h *Handlers) getNews(w http.ResponseWriter, r *http.Request) {
	// Fetch returns a fallback body (empty list + error text) on failure so
	// the widget can always render; the status stays 200 either way.
	resp, _ := h.News.Fetch(r.Context())
	utils.WriteJSON(w, http.StatusOK, resp)
}

type chatRequest struct {
	Message string `json:"message"`
	Action  string `json:"action"`
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "잘못된 요청 형식입니다", http.StatusBadRequest)
		return
	}

	var resp chat.Response
	switch {
	case req.Action != "":
		resp = chat.ReplyAction(req.Action)
	case req.Message != "":
		resp = chat.Reply(req.Message)
	default:
		resp = chat.Greeting()
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
