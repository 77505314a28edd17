package internal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RealityNet/teleparser/internal/tl"
)

// Event type tags carried in timeline descriptions, matching the kinds of
// datable facts the cache records.
const (
	TypeChatCreationDate = "chat_creation_date"
	TypeChatLastUpdate   = "chat_last_update"
	TypeKeyDate          = "key_date"
	TypeUserStatusUpdate = "user_status_update"
	TypeForwardOrigin    = "forward_origin"
)

// TimelineEntry is the normalized cross-table projection of one datable
// fact: when it happened, which table it came from, a short description and
// the key of the originating row.
type TimelineEntry struct {
	Timestamp   int64
	Table       string
	Description string
	RowKey      string
}

// BuildTimeline scans the extracted tables for recognized timestamp fields
// and returns the entries in a stable total order: timestamp ascending,
// ties broken by table name then row key. Which fields count as datable is
// a fixed per-table rule, independent of the decode schema.
func BuildTimeline(results map[string]*TableResult) []TimelineEntry {
	users := UserIndex(results["users"])

	var entries []TimelineEntry
	add := func(e TimelineEntry, ok bool) {
		if ok {
			entries = append(entries, e)
		}
	}

	if r := results["chats"]; r != nil {
		for _, row := range r.Rows {
			add(chatEntry(row))
		}
	}
	if r := results["dialogs"]; r != nil {
		for _, row := range r.Rows {
			add(dialogEntry(row))
		}
	}
	if r := results["enc_chats"]; r != nil {
		for _, row := range r.Rows {
			add(encChatCreationEntry(row))
			add(encChatKeyEntry(row))
		}
	}
	if r := results["users"]; r != nil {
		for _, row := range r.Rows {
			add(userStatusEntry(row))
		}
	}
	if r := results["messages"]; r != nil {
		for _, row := range r.Rows {
			add(messageEntry(row, users))
			add(forwardOriginEntry(row))
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Timestamp != b.Timestamp {
			return a.Timestamp < b.Timestamp
		}
		if a.Table != b.Table {
			return a.Table < b.Table
		}
		return a.RowKey < b.RowKey
	})
	return entries
}

// UserIndex maps user ids to their identity line for cross-referencing.
func UserIndex(users *TableResult) map[string]string {
	if users == nil {
		return nil
	}
	index := make(map[string]string, len(users.Rows))
	for _, row := range users.Rows {
		index[row.Key] = UserIdentity(row)
	}
	return index
}

// UserIdentity renders a users row as "uid: .. nick: .. fullname: .. phone: ..".
func UserIdentity(row *RowRecord) string {
	tree := row.Trees["data"]
	if tree == nil {
		return "uid: " + row.Key
	}
	username, _ := tree.GetString("username")
	first, _ := tree.GetString("first_name")
	last, _ := tree.GetString("last_name")
	phone, _ := tree.GetString("phone")
	return fmt.Sprintf("uid: %s nick: %s fullname: %s %s phone: %s",
		row.Key, username, first, last, phone)
}

func chatEntry(row *RowRecord) (TimelineEntry, bool) {
	tree := row.Trees["data"]
	if tree == nil {
		return TimelineEntry{}, false
	}
	date, ok := tree.GetInt("date")
	if !ok || date == 0 {
		return TimelineEntry{}, false
	}
	title, _ := tree.GetString("title")
	desc := fmt.Sprintf("%s %s title:%s", TypeChatCreationDate, tree.Name, title)
	if n, ok := tree.GetInt("participants_count"); ok && n > 0 {
		desc += fmt.Sprintf(" members:%d", n)
	}
	return TimelineEntry{Timestamp: date, Table: row.Table, Description: desc, RowKey: row.Key}, true
}

func dialogEntry(row *RowRecord) (TimelineEntry, bool) {
	date, ok := row.PlainInt("date")
	if !ok || date == 0 {
		return TimelineEntry{}, false
	}
	unread, _ := row.PlainInt("unread_count")
	inbox, _ := row.PlainInt("inbox_max")
	outbox, _ := row.PlainInt("outbox_max")
	lastMid, _ := row.PlainInt("last_mid")
	desc := fmt.Sprintf("%s unread_count:%d inbox_max:%d outbox_max:%d last_mid:%d",
		TypeChatLastUpdate, unread, inbox, outbox, lastMid)
	return TimelineEntry{Timestamp: date, Table: row.Table, Description: desc, RowKey: row.Key}, true
}

func encChatCreationEntry(row *RowRecord) (TimelineEntry, bool) {
	tree := row.Trees["data"]
	if tree == nil {
		return TimelineEntry{}, false
	}
	date, ok := tree.GetInt("date")
	if !ok || date == 0 {
		return TimelineEntry{}, false
	}
	admin, _ := tree.GetInt("admin_id")
	participant, _ := tree.GetInt("participant_id")
	desc := fmt.Sprintf("%s %s admin_id:%d participant_id:%d",
		TypeChatCreationDate, tree.Name, admin, participant)
	return TimelineEntry{Timestamp: date, Table: row.Table, Description: desc, RowKey: row.Key}, true
}

func encChatKeyEntry(row *RowRecord) (TimelineEntry, bool) {
	keyDate, ok := row.PlainInt("key_date")
	if !ok || keyDate == 0 {
		return TimelineEntry{}, false
	}
	return TimelineEntry{
		Timestamp:   keyDate,
		Table:       row.Table,
		Description: TypeKeyDate + " encryption key rotated",
		RowKey:      row.Key,
	}, true
}

func userStatusEntry(row *RowRecord) (TimelineEntry, bool) {
	status, ok := row.PlainInt("status")
	if !ok || status <= 0 {
		return TimelineEntry{}, false
	}
	return TimelineEntry{
		Timestamp:   status,
		Table:       row.Table,
		Description: TypeUserStatusUpdate + " " + UserIdentity(row),
		RowKey:      row.Key,
	}, true
}

func messageEntry(row *RowRecord, users map[string]string) (TimelineEntry, bool) {
	tree := row.Trees["data"]
	if tree == nil {
		return TimelineEntry{}, false
	}
	date, ok := tree.GetInt("date")
	if !ok || date == 0 {
		return TimelineEntry{}, false
	}
	desc := DescribeMessage(tree, users)
	if reply := row.Trees["replydata"]; reply != nil {
		replyID, _ := reply.GetInt("id")
		desc += fmt.Sprintf(" [IS REPLY TO MSG ID %d] %s", replyID, DescribeMessage(reply, users))
	}
	return TimelineEntry{Timestamp: date, Table: row.Table, Description: desc, RowKey: row.Key}, true
}

// forwardOriginEntry surfaces the original send time of a forwarded message
// as its own entry, next to the forward's own date.
func forwardOriginEntry(row *RowRecord) (TimelineEntry, bool) {
	tree := row.Trees["data"]
	if tree == nil {
		return TimelineEntry{}, false
	}
	fwd := tree.GetObject("fwd_from")
	if fwd == nil {
		return TimelineEntry{}, false
	}
	date, ok := fwd.GetInt("date")
	if !ok || date == 0 {
		return TimelineEntry{}, false
	}
	from, _ := fwd.GetInt("from_id")
	desc := fmt.Sprintf("%s forwarded message originally by %d", TypeForwardOrigin, from)
	return TimelineEntry{Timestamp: date, Table: row.Table, Description: desc, RowKey: row.Key}, true
}

// DescribeMessage summarizes one decoded message tree: sender, destination,
// then either the service action or the text, with a media note when the
// message carries one.
func DescribeMessage(tree *tl.Object, users map[string]string) string {
	var sb strings.Builder
	sb.WriteString(tree.Name)

	if from, ok := tree.GetInt("from_id"); ok && from != 0 {
		fmt.Fprintf(&sb, " from:%d", from)
		if who, ok := users[fmt.Sprintf("%d", from)]; ok {
			fmt.Fprintf(&sb, " (%s)", who)
		}
	}
	if peer := tree.GetObject("to_id"); peer != nil {
		sb.WriteString(" to:" + DescribePeer(peer))
	}
	if action := tree.GetObject("action"); action != nil {
		sb.WriteString(" action:" + action.Name)
		if title, ok := action.GetString("title"); ok && title != "" {
			sb.WriteString(" title:" + title)
		}
		if uid, ok := action.GetInt("user_id"); ok {
			fmt.Fprintf(&sb, " user_id:%d", uid)
		}
		return sb.String()
	}
	if text, ok := tree.GetString("message"); ok && text != "" {
		sb.WriteString(" text:" + text)
	}
	if media := DescribeMedia(tree.GetObject("media")); media != "" {
		sb.WriteString(" media:[" + media + "]")
	}
	return sb.String()
}

// DescribePeer renders a peer object as "user:<id>", "chat:<id>" or
// "channel:<id>".
func DescribePeer(peer *tl.Object) string {
	for _, field := range []struct{ name, label string }{
		{"user_id", "user"},
		{"chat_id", "chat"},
		{"channel_id", "channel"},
	} {
		if id, ok := peer.GetInt(field.name); ok {
			return fmt.Sprintf("%s:%d", field.label, id)
		}
	}
	return peer.Name
}

// DescribeMedia summarizes a message_media_* object; empty media yields "".
func DescribeMedia(media *tl.Object) string {
	if media == nil || media.Name == "message_media_empty" {
		return ""
	}
	switch media.Name {
	case "message_media_document":
		doc := media.GetObject("document")
		if doc == nil {
			return media.Name
		}
		id, _ := doc.GetInt("id")
		mime, _ := doc.GetString("mime_type")
		size, _ := doc.GetInt("size")
		out := fmt.Sprintf("document id:%d mime:%s size:%d", id, mime, size)
		if attrs, ok := doc.Get("attributes").(*tl.Vector); ok {
			for _, item := range attrs.Items {
				attr, ok := item.(*tl.Object)
				if !ok {
					continue
				}
				if name, ok := attr.GetString("file_name"); ok {
					out += " file_name:" + name
				}
			}
		}
		return out
	case "message_media_photo":
		photo := media.GetObject("photo")
		if photo == nil {
			return media.Name
		}
		id, _ := photo.GetInt("id")
		return fmt.Sprintf("photo id:%d", id)
	case "message_media_web_page":
		page := media.GetObject("webpage")
		if page == nil {
			return media.Name
		}
		id, _ := page.GetInt("id")
		out := fmt.Sprintf("webpage id:%d", id)
		if url, ok := page.GetString("url"); ok && url != "" {
			out += " url:" + url
		}
		if title, ok := page.GetString("title"); ok && title != "" {
			out += " title:" + title
		}
		return out
	case "message_media_contact":
		phone, _ := media.GetString("phone_number")
		first, _ := media.GetString("first_name")
		return fmt.Sprintf("contact %s %s", first, phone)
	case "message_media_geo":
		geo := media.GetObject("geo")
		if geo == nil {
			return media.Name
		}
		lat, _ := geo.Get("lat").(tl.Double)
		long, _ := geo.Get("long").(tl.Double)
		return fmt.Sprintf("geo %g,%g", float64(lat), float64(long))
	default:
		return media.Name
	}
}
