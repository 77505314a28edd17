package testutil

// Constructor tags used by the fixture blobs, matching the built-in 5.6.2
// schema.
const (
	TagMessage               uint32 = 0x44f9b43d
	TagMessageService        uint32 = 0x9e19a1f6
	TagMessageForwarded      uint32 = 0xa367e716
	TagPeerUser              uint32 = 0x9db1bc6d
	TagPeerChannel           uint32 = 0xbddde532
	TagMediaEmpty            uint32 = 0x3ded6320
	TagMediaDocument         uint32 = 0x9cb070d7
	TagDocument              uint32 = 0x87232bc7
	TagDocumentEmpty         uint32 = 0x36f8c871
	TagDocAttrFilename       uint32 = 0x15590068
	TagFwdHeader             uint32 = 0x559ebe6d
	TagActionChatCreate      uint32 = 0xa6638b9a
	TagUserV1                uint32 = 0x2e13f4c3
	TagUserV2                uint32 = 0x938458c1
	TagUserProfilePhotoEmpty uint32 = 0x4f11bae1
	TagUserStatusOffline     uint32 = 0x008c703f
	TagChat                  uint32 = 0xd91cdd54
	TagChatPhotoEmpty        uint32 = 0x37c1011c
	TagEncryptedChat         uint32 = 0xfa56ce36
	TagUserFull              uint32 = 0x8ea4a881
	TagPeerNotifySettings    uint32 = 0xaf509d20
)

// EncodeTextMessage builds a plain user-to-user text message blob.
func EncodeTextMessage(id, fromID, toUserID, date int32, text string) []byte {
	return NewBlob().
		Tag(TagMessage).
		Int32(id).
		Int32(fromID).
		Tag(TagPeerUser).Int32(toUserID).
		Int32(date).
		String(text).
		Tag(TagMediaEmpty).
		Bytes()
}

// EncodeDocumentMessage builds a message carrying a document attachment
// with a filename attribute.
func EncodeDocumentMessage(id, fromID, toUserID, date int32, docID int64, mime, filename string, size int32) []byte {
	return NewBlob().
		Tag(TagMessage).
		Int32(id).
		Int32(fromID).
		Tag(TagPeerUser).Int32(toUserID).
		Int32(date).
		String("").
		Tag(TagMediaDocument).
		Tag(TagDocument).
		Int64(docID).Int64(0).Int32(date).String(mime).Int32(size).
		Tag(TagDocumentEmpty).Int64(0). // thumb
		Int32(4).                       // dc_id
		VectorHeader(1).
		Tag(TagDocAttrFilename).String(filename).
		Bytes()
}

// EncodeServiceMessage builds a chat-create service message.
func EncodeServiceMessage(id, fromID, toUserID, date int32, title string, userIDs ...int32) []byte {
	b := NewBlob().
		Tag(TagMessageService).
		Int32(id).
		Int32(fromID).
		Tag(TagPeerUser).Int32(toUserID).
		Int32(date).
		Tag(TagActionChatCreate).
		String(title).
		VectorHeader(len(userIDs))
	for _, uid := range userIDs {
		b.Int32(uid)
	}
	return b.Bytes()
}

// EncodeUser builds a 5.5.0-layout user blob (also valid under 5.6.2).
func EncodeUser(id int32, first, last, username, phone string) []byte {
	return NewBlob().
		Tag(TagUserV1).
		Int32(id).
		String(first).String(last).String(username).String(phone).
		Tag(TagUserProfilePhotoEmpty).
		Tag(TagUserStatusOffline).Int32(0).
		Bytes()
}

// EncodeChat builds a basic group chat blob.
func EncodeChat(id int32, title string, participants, date int32) []byte {
	return NewBlob().
		Tag(TagChat).
		Int32(id).
		String(title).
		Tag(TagChatPhotoEmpty).
		Int32(participants).
		Int32(date).
		Int32(1).
		Bytes()
}

// EncodeEncryptedChat builds an established secret chat blob.
func EncodeEncryptedChat(id, date, adminID, participantID int32, fingerprint int64) []byte {
	return NewBlob().
		Tag(TagEncryptedChat).
		Int32(id).
		Int64(0).
		Int32(date).
		Int32(adminID).
		Int32(participantID).
		String("\x01\x02\x03\x04").
		Int64(fingerprint).
		Bytes()
}

// EncodeUserSettings builds a user_full blob for the user_settings table.
func EncodeUserSettings(userID int32, about string, muteUntil int32) []byte {
	return NewBlob().
		Tag(TagUserFull).
		Tag(TagUserV1).
		Int32(userID).
		String("").String("").String("").String("").
		Tag(TagUserProfilePhotoEmpty).
		Tag(TagUserStatusOffline).Int32(0).
		String(about).
		Tag(TagPeerNotifySettings).
		Bool(true).Bool(false).Int32(muteUntil).String("default").
		Int32(0).
		Bytes()
}
