package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mytasks/mytasks-server/internal/model"
)

// dateLayout is the wire format for due dates: calendar dates with no time
// component.
const dateLayout = "2006-01-02"

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// taskResponse is the JSON shape of a task.
type taskResponse struct {
	ID        string  `json:"id"`
	Text      string  `json:"text"`
	Date      string  `json:"date"`
	Priority  string  `json:"priority"`
	Folder    string  `json:"folder"`
	Completed bool    `json:"completed"`
	UserID    *string `json:"userId,omitempty"`
}

func toTaskResponse(task model.Task) taskResponse {
	resp := taskResponse{
		ID:        task.ID.String(),
		Text:      task.Text,
		Date:      task.DueDate.Format(dateLayout),
		Priority:  task.Priority,
		Folder:    task.Folder,
		Completed: task.Completed,
	}
	if task.OwnerID != nil {
		ownerID := task.OwnerID.String()
		resp.UserID = &ownerID
	}
	return resp
}

func toTaskResponses(tasks []model.Task) []taskResponse {
	responses := make([]taskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, toTaskResponse(task))
	}
	return responses
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}
