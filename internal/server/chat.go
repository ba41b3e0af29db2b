package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	Type      string `json:"type"`       // "ask" or "interview"
	SessionID string `json:"session_id"` // empty to start a new interview
	Content   string `json:"content"`
}

// chatResponse is the outgoing WebSocket message format.
type chatResponse struct {
	Type      string `json:"type"` // "response" or "error"
	SessionID string `json:"session_id"`
	Content   string `json:"content"`
	Turn      int    `json:"turn,omitempty"`
	Done      bool   `json:"done,omitempty"`
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("chat: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("chat: websocket read: %v", err)
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendChatError(conn, "", "invalid message format")
			continue
		}

		if req.Content == "" {
			s.sendChatError(conn, req.SessionID, "content is required")
			continue
		}

		switch req.Type {
		case "ask":
			s.handleAskMessage(conn, r, req)
		case "interview":
			s.handleInterviewMessage(conn, req)
		default:
			s.sendChatError(conn, req.SessionID, "unknown message type: "+req.Type)
		}
	}
}

func (s *Server) handleAskMessage(conn *websocket.Conn, r *http.Request, req chatRequest) {
	answer := s.engine.Answer(r.Context(), req.Content)

	s.sendChatResponse(conn, chatResponse{
		Type:      "response",
		SessionID: req.SessionID,
		Content:   answer,
	})
}

// handleInterviewMessage feeds one answer into an interview session.
// Without a session ID it starts a new session, treating the content
// as the documenter's name.
func (s *Server) handleInterviewMessage(conn *websocket.Conn, req chatRequest) {
	if req.SessionID == "" {
		id, welcome := s.registry.StartSession(req.Content)
		s.sendChatResponse(conn, chatResponse{
			Type:      "response",
			SessionID: id,
			Content:   welcome,
		})
		return
	}

	session := s.registry.Get(req.SessionID)
	if session == nil {
		s.sendChatError(conn, req.SessionID, "session not found")
		return
	}

	message := session.ProcessResponse(req.Content)
	s.sendChatResponse(conn, chatResponse{
		Type:      "response",
		SessionID: req.SessionID,
		Content:   message,
		Turn:      session.Turn(),
		Done:      session.Done(),
	})
}

func (s *Server) sendChatResponse(conn *websocket.Conn, resp chatResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("chat: websocket write: %v", err)
	}
}

func (s *Server) sendChatError(conn *websocket.Conn, sessionID, message string) {
	resp := chatResponse{
		Type:      "error",
		SessionID: sessionID,
		Content:   message,
	}
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("chat: websocket write error: %v", err)
	}
}
