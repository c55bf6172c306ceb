package messages

import (
	"sort"
	"strconv"
	"strings"

	"max.ks1230/public24-bot/internal/model/webhook"
)

// renderMessageList flattens a message list to Telegram text. Link labels
// are ordered by their numeric prefix for stable output.
func renderMessageList(list webhook.MessageList) string {
	if list.Empty() {
		return list.Fallback
	}

	lines := make([]string, 0, len(list.Messages)+2*len(list.Links)+1)
	lines = append(lines, list.Header)
	lines = append(lines, list.Messages...)

	labels := make([]string, 0, len(list.Links))
	for label := range list.Links {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labelIndex(labels[i]) < labelIndex(labels[j])
	})
	for _, label := range labels {
		lines = append(lines, label, list.Links[label])
	}

	return strings.Join(lines, "\n")
}

func labelIndex(label string) int {
	prefix, _, _ := strings.Cut(label, ":")
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0
	}
	return n
}
