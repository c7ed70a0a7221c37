package handler

import (
	"encoding/json"

	"go-stock-manager/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const issueSessionKey = "issue"

type IssueHandler struct {
	service  service.IssueService
	sessions *session.Store
}

func NewIssueHandler(s service.IssueService, sessions *session.Store) *IssueHandler {
	return &IssueHandler{service: s, sessions: sessions}
}

type issuePanel struct {
	service.IssueSession
	MaxAmount int                   `json:"max_amount"`
	Options   []service.IssueOption `json:"options,omitempty"`
}

type selectProductRequest struct {
	ProductID int64 `json:"product_id"`
}

type submitAmountRequest struct {
	Amount int `json:"amount"`
}

func (h *IssueHandler) GetIssue(c *fiber.Ctx) error {
	_, state, err := h.load(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Session unavailable"})
	}

	options, err := h.service.Options(c.UserContext())
	if err != nil {
		return respondError(c, err, panel(state))
	}

	p := panel(state)
	p.Options = options
	return c.JSON(p)
}

func (h *IssueHandler) SelectProduct(c *fiber.Ctx) error {
	var req selectProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sess, state, err := h.load(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Session unavailable"})
	}

	if err := h.service.Select(c.UserContext(), &state, req.ProductID); err != nil {
		return respondError(c, err, panel(state))
	}
	if err := h.save(sess, state); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Session unavailable"})
	}

	return c.JSON(fiber.Map{"message": "Product selected", "data": panel(state)})
}

func (h *IssueHandler) SubmitAmount(c *fiber.Ctx) error {
	var req submitAmountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	sess, state, err := h.load(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Session unavailable"})
	}

	submitErr := h.service.Submit(c.UserContext(), &state, req.Amount)
	// The state moves on failure too (validating, back to amount entry).
	if err := h.save(sess, state); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Session unavailable"})
	}
	if submitErr != nil {
		return respondError(c, submitErr, panel(state))
	}

	return c.JSON(fiber.Map{"message": state.Message, "data": panel(state)})
}

func (h *IssueHandler) Reset(c *fiber.Ctx) error {
	sess, state, err := h.load(c)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Session unavailable"})
	}

	h.service.Reset(&state)
	if err := h.save(sess, state); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Session unavailable"})
	}
	return c.JSON(fiber.Map{"message": "Issue restarted", "data": panel(state)})
}

func (h *IssueHandler) GetJournal(c *fiber.Ctx) error {
	records, err := h.service.Journal(c.UserContext(), c.QueryInt("limit", 100))
	if err != nil {
		return respondError(c, err, nil)
	}
	return c.JSON(records)
}

func (h *IssueHandler) load(c *fiber.Ctx) (*session.Session, service.IssueSession, error) {
	state := service.NewIssueSession()
	sess, err := h.sessions.Get(c)
	if err != nil {
		return nil, state, err
	}
	if raw, ok := sess.Get(issueSessionKey).(string); ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &state); err != nil {
			state = service.NewIssueSession()
		}
	}
	return sess, state, nil
}

func (h *IssueHandler) save(sess *session.Session, state service.IssueSession) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	sess.Set(issueSessionKey, string(raw))
	return sess.Save()
}

func panel(state service.IssueSession) issuePanel {
	return issuePanel{IssueSession: state, MaxAmount: state.MaxAmount()}
}
