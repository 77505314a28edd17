package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

var cacheSchema = []string{
	`CREATE TABLE chats (uid INTEGER PRIMARY KEY, name TEXT, data BLOB)`,
	`CREATE TABLE contacts (uid INTEGER PRIMARY KEY, mutual INTEGER)`,
	`CREATE TABLE dialogs (did INTEGER PRIMARY KEY, date INTEGER, unread_count INTEGER,
		last_mid INTEGER, inbox_max INTEGER, outbox_max INTEGER, last_mid_i INTEGER,
		unread_count_i INTEGER, pts INTEGER, date_i INTEGER, pinned INTEGER, flags INTEGER)`,
	`CREATE TABLE enc_chats (uid INTEGER PRIMARY KEY, user INTEGER, name TEXT, data BLOB,
		g BLOB, authkey BLOB, ttl INTEGER, layer INTEGER, seq_in INTEGER, seq_out INTEGER,
		use_count INTEGER, exchange_id INTEGER, key_date INTEGER, fprint INTEGER,
		fauthkey BLOB, khash BLOB, in_seq_no INTEGER, admin_id INTEGER, mtproto_seq INTEGER)`,
	`CREATE TABLE media_v2 (mid INTEGER PRIMARY KEY, uid INTEGER, date INTEGER,
		type INTEGER, data BLOB)`,
	`CREATE TABLE messages (mid INTEGER PRIMARY KEY, uid INTEGER, read_state INTEGER,
		send_state INTEGER, date INTEGER, data BLOB, out INTEGER, ttl INTEGER,
		media INTEGER, replydata BLOB, imp INTEGER, mention INTEGER)`,
	`CREATE TABLE sent_files_v2 (uid TEXT PRIMARY KEY, type INTEGER, parent TEXT, data BLOB)`,
	`CREATE TABLE users (uid INTEGER PRIMARY KEY, name TEXT, status INTEGER, data BLOB)`,
	`CREATE TABLE user_settings (uid INTEGER PRIMARY KEY, info BLOB, pinned INTEGER)`,
}

// CreateEmptyCacheFile creates an on-disk cache4.db with the table schema
// but no rows and returns its path.
func CreateEmptyCacheFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache4.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to create cache database: %v", err)
	}
	defer db.Close()
	for _, stmt := range cacheSchema {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("Failed to create schema: %v", err)
		}
	}
	return path
}

// CreateCacheFile creates an on-disk cache4.db populated with one coherent
// set of fixture rows across all nine tables and returns its path.
//
// The fixture describes two users (100, the owner, and 200), a group chat
// 300 created at t=1500000000, a secret chat 400 keyed at t=1500000500, a
// text message at t=1600000000 and a document message at t=1600000100.
func CreateCacheFile(t *testing.T) string {
	t.Helper()
	path := CreateEmptyCacheFile(t)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open cache database: %v", err)
	}
	defer db.Close()

	exec := func(query string, args ...interface{}) {
		t.Helper()
		if _, err := db.Exec(query, args...); err != nil {
			t.Fatalf("Failed to insert fixture row: %v", err)
		}
	}

	exec(`INSERT INTO users (uid, name, status, data) VALUES (?, ?, ?, ?)`,
		100, "alice", 1600000200, EncodeUser(100, "Alice", "Adams", "alice", "+39020000001"))
	exec(`INSERT INTO users (uid, name, status, data) VALUES (?, ?, ?, ?)`,
		200, "bob", 0, EncodeUser(200, "Bob", "", "bob", ""))

	exec(`INSERT INTO contacts (uid, mutual) VALUES (?, ?)`, 200, 1)

	exec(`INSERT INTO chats (uid, name, data) VALUES (?, ?, ?)`,
		300, "holidays", EncodeChat(300, "Holidays", 2, 1500000000))

	exec(`INSERT INTO dialogs (did, date, unread_count, last_mid, inbox_max, outbox_max,
		last_mid_i, unread_count_i, pts, date_i, pinned, flags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		200, 1600000100, 1, 2, 2, 1, 0, 0, 10, 0, 0, 0)

	exec(`INSERT INTO enc_chats (uid, user, name, data, g, authkey, ttl, layer, seq_in,
		seq_out, use_count, exchange_id, key_date, fprint, fauthkey, khash, in_seq_no,
		admin_id, mtproto_seq) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		400, 200, "secret", EncodeEncryptedChat(400, 1500000400, 100, 200, 42),
		[]byte{1}, []byte{2}, 0, 73, 0, 1, 1, 0, 1500000500, 42, []byte{3}, []byte{4}, 0, 100, 0)

	exec(`INSERT INTO messages (mid, uid, read_state, send_state, date, data, out, ttl,
		media, replydata, imp, mention) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		1, 200, 1, 0, 1600000000, EncodeTextMessage(1, 100, 200, 1600000000, "hi"),
		1, 0, 0, nil, 0, 0)
	exec(`INSERT INTO messages (mid, uid, read_state, send_state, date, data, out, ttl,
		media, replydata, imp, mention) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		2, 200, 0, 0, 1600000100,
		EncodeDocumentMessage(2, 200, 100, 1600000100, 777, "application/pdf", "report.pdf", 2048),
		0, 0, 1, EncodeTextMessage(1, 100, 200, 1600000000, "hi"), 0, 0)

	exec(`INSERT INTO media_v2 (mid, uid, date, type, data) VALUES (?, ?, ?, ?, ?)`,
		2, 200, 1600000100, 1,
		EncodeDocumentMessage(2, 200, 100, 1600000100, 777, "application/pdf", "report.pdf", 2048))

	exec(`INSERT INTO sent_files_v2 (uid, type, parent, data) VALUES (?, ?, ?, ?)`,
		"777_42", 1, "sent",
		NewBlob().Tag(TagMediaDocument).
			Tag(TagDocument).Int64(777).Int64(0).Int32(1600000100).
			String("application/pdf").Int32(2048).
			Tag(TagDocumentEmpty).Int64(0).Int32(4).
			VectorHeader(1).Tag(TagDocAttrFilename).String("report.pdf").
			Bytes())

	exec(`INSERT INTO user_settings (uid, info, pinned) VALUES (?, ?, ?)`,
		200, EncodeUserSettings(200, "fixture bio", 0), 0)

	return path
}
