package watch

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mattjoyce/axis-scorer/internal/history"
)

// --- Message types ---

type scoresMsg []history.Entry

type tickMsg time.Time

type errMsg error

// --- Commands ---

// fetchScores queries the /scores endpoint.
func fetchScores(apiURL string) tea.Cmd {
	return func() tea.Msg {
		client := &http.Client{Timeout: 2 * time.Second}
		resp, err := client.Get(apiURL + "/scores")
		if err != nil {
			return errMsg(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return errMsg(fmt.Errorf("scores endpoint returned %s", resp.Status))
		}

		var entries []history.Entry
		if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
			return errMsg(err)
		}
		return scoresMsg(entries)
	}
}

// trimFloat renders a score without a trailing zero (4, not 4.0).
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
