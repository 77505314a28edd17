package tl

// Supported app versions. Blobs written by any other release are rejected
// rather than decoded against a closest-match schema.
const (
	Version550 = "5.5.0"
	Version562 = "5.6.2"
)

func i32(name string) FieldDef  { return FieldDef{Name: name, Kind: KindInt32} }
func i64(name string) FieldDef  { return FieldDef{Name: name, Kind: KindInt64} }
func dbl(name string) FieldDef  { return FieldDef{Name: name, Kind: KindDouble} }
func flag(name string) FieldDef { return FieldDef{Name: name, Kind: KindBool} }
func str(name string) FieldDef  { return FieldDef{Name: name, Kind: KindBytes} }
func obj(name string) FieldDef  { return FieldDef{Name: name, Kind: KindObject} }

func vec(name string, elem Kind) FieldDef {
	return FieldDef{Name: name, Kind: KindVector, Elem: elem}
}

func vecBare(name string, recipe *Recipe) FieldDef {
	return FieldDef{Name: name, Kind: KindVector, Elem: KindBare, Bare: recipe}
}

func recipe(name string, fields ...FieldDef) *Recipe {
	return &Recipe{Name: name, Fields: fields}
}

// Recipes shared by both supported versions. Field lists mirror what the
// cache actually persists for these constructors.
var (
	recipeNull = recipe("null")

	recipePeerUser    = recipe("peer_user", i32("user_id"))
	recipePeerChat    = recipe("peer_chat", i32("chat_id"))
	recipePeerChannel = recipe("peer_channel", i32("channel_id"))

	recipeUserStatusEmpty     = recipe("user_status_empty")
	recipeUserStatusOnline    = recipe("user_status_online", i32("expires"))
	recipeUserStatusOffline   = recipe("user_status_offline", i32("was_online"))
	recipeUserStatusRecently  = recipe("user_status_recently")
	recipeUserStatusLastWeek  = recipe("user_status_last_week")
	recipeUserStatusLastMonth = recipe("user_status_last_month")

	recipeFileLocation = recipe("file_location",
		i32("dc_id"), i64("volume_id"), i32("local_id"), i64("secret"))
	recipeFileLocationUnavailable = recipe("file_location_unavailable",
		i64("volume_id"), i32("local_id"), i64("secret"))

	recipeUserProfilePhoto = recipe("user_profile_photo",
		i64("photo_id"), obj("photo_small"), obj("photo_big"))
	recipeUserProfilePhotoEmpty = recipe("user_profile_photo_empty")

	recipeChatPhoto = recipe("chat_photo",
		obj("photo_small"), obj("photo_big"))
	recipeChatPhotoEmpty = recipe("chat_photo_empty")

	recipeGeoPoint      = recipe("geo_point", dbl("long"), dbl("lat"))
	recipeGeoPointEmpty = recipe("geo_point_empty")

	recipePhotoSize = recipe("photo_size",
		str("type"), obj("location"), i32("w"), i32("h"), i32("size"))
	recipePhotoCachedSize = recipe("photo_cached_size",
		str("type"), obj("location"), i32("w"), i32("h"), str("bytes"))
	recipePhotoSizeEmpty = recipe("photo_size_empty", str("type"))

	recipePhoto = recipe("photo",
		i64("id"), i64("access_hash"), i32("date"), vec("sizes", KindObject))
	recipePhotoEmpty = recipe("photo_empty", i64("id"))

	recipeDocument = recipe("document",
		i64("id"), i64("access_hash"), i32("date"), str("mime_type"),
		i32("size"), obj("thumb"), i32("dc_id"), vec("attributes", KindObject))
	recipeDocumentEmpty = recipe("document_empty", i64("id"))

	recipeDocAttrImageSize = recipe("document_attribute_image_size",
		i32("w"), i32("h"))
	recipeDocAttrAnimated = recipe("document_attribute_animated")
	recipeDocAttrSticker  = recipe("document_attribute_sticker",
		str("alt"), obj("stickerset"))
	recipeDocAttrVideo = recipe("document_attribute_video",
		i32("duration"), i32("w"), i32("h"))
	recipeDocAttrAudio = recipe("document_attribute_audio",
		i32("duration"), str("title"), str("performer"))
	recipeDocAttrFilename = recipe("document_attribute_filename",
		str("file_name"))
	recipeDocAttrHasStickers = recipe("document_attribute_has_stickers")

	recipeInputStickerSetEmpty = recipe("input_sticker_set_empty")
	recipeInputStickerSetID    = recipe("input_sticker_set_id",
		i64("id"), i64("access_hash"))
	recipeInputStickerSetShortName = recipe("input_sticker_set_short_name",
		str("short_name"))

	recipeWebPage = recipe("web_page",
		i64("id"), str("url"), str("display_url"), i32("hash"),
		str("type"), str("site_name"), str("title"), str("description"))
	recipeWebPageEmpty = recipe("web_page_empty", i64("id"))

	recipeMediaEmpty = recipe("message_media_empty")
	recipeMediaPhoto = recipe("message_media_photo", obj("photo"))
	recipeMediaGeo   = recipe("message_media_geo", obj("geo"))
	recipeMediaContact = recipe("message_media_contact",
		str("phone_number"), str("first_name"), str("last_name"), i32("user_id"))
	recipeMediaDocument    = recipe("message_media_document", obj("document"))
	recipeMediaWebPage     = recipe("message_media_web_page", obj("webpage"))
	recipeMediaUnsupported = recipe("message_media_unsupported")

	recipeFwdHeader = recipe("message_fwd_header",
		i32("from_id"), i32("date"))

	recipeActionEmpty      = recipe("message_action_empty")
	recipeActionChatCreate = recipe("message_action_chat_create",
		str("title"), vec("users", KindInt32))
	recipeActionChatEditTitle = recipe("message_action_chat_edit_title",
		str("title"))
	recipeActionChatEditPhoto = recipe("message_action_chat_edit_photo",
		obj("photo"))
	recipeActionChatDeletePhoto = recipe("message_action_chat_delete_photo")
	recipeActionChatAddUser     = recipe("message_action_chat_add_user",
		vec("users", KindInt32))
	recipeActionChatDeleteUser = recipe("message_action_chat_delete_user",
		i32("user_id"))
	recipeActionChatJoinedByLink = recipe("message_action_chat_joined_by_link",
		i32("inviter_id"))
	recipeActionChannelCreate = recipe("message_action_channel_create",
		str("title"))
	recipeActionHistoryClear = recipe("message_action_history_clear")
	recipeActionPinMessage   = recipe("message_action_pin_message")
	recipeActionPhoneCall    = recipe("message_action_phone_call",
		i64("call_id"), i32("duration"))

	recipeChatParticipant = recipe("chat_participant",
		i32("user_id"), i32("inviter_id"), i32("date"))
	recipeChatParticipants = recipe("chat_participants",
		i32("chat_id"), vecBare("participants", recipeChatParticipant),
		i32("version"))

	recipeEncryptedChat = recipe("encrypted_chat",
		i32("id"), i64("access_hash"), i32("date"), i32("admin_id"),
		i32("participant_id"), str("g_a_or_b"), i64("key_fingerprint"))
	recipeEncryptedChatRequested = recipe("encrypted_chat_requested",
		i32("id"), i64("access_hash"), i32("date"), i32("admin_id"),
		i32("participant_id"), str("g_a"))
	recipeEncryptedChatWaiting = recipe("encrypted_chat_waiting",
		i32("id"), i64("access_hash"), i32("date"), i32("admin_id"),
		i32("participant_id"))
	recipeEncryptedChatDiscarded = recipe("encrypted_chat_discarded", i32("id"))
	recipeEncryptedChatEmpty     = recipe("encrypted_chat_empty", i32("id"))

	recipePeerNotifySettings = recipe("peer_notify_settings",
		flag("show_previews"), flag("silent"), i32("mute_until"), str("sound"))

	recipeUserFull = recipe("user_full",
		obj("user"), str("about"), obj("notify_settings"),
		i32("common_chats_count"))
)

// schemaCommon holds the constructors whose wire shape is identical in both
// supported versions.
func schemaCommon() map[uint32]*Recipe {
	return map[uint32]*Recipe{
		TagNull: recipeNull,

		0x9db1bc6d: recipePeerUser,
		0xbad0e5bb: recipePeerChat,
		0xbddde532: recipePeerChannel,

		0x09d05049: recipeUserStatusEmpty,
		0xedb93949: recipeUserStatusOnline,
		0x008c703f: recipeUserStatusOffline,
		0xe26f42f1: recipeUserStatusRecently,
		0x07bf09fc: recipeUserStatusLastWeek,
		0x77ebc742: recipeUserStatusLastMonth,

		0x53d69076: recipeFileLocation,
		0x7c596b46: recipeFileLocationUnavailable,

		0xd559d8c8: recipeUserProfilePhoto,
		0x4f11bae1: recipeUserProfilePhotoEmpty,
		0x6153276a: recipeChatPhoto,
		0x37c1011c: recipeChatPhotoEmpty,

		0x0296f104: recipeGeoPoint,
		0x1117dd5f: recipeGeoPointEmpty,

		0x77bfb61b: recipePhotoSize,
		0xe9a734fa: recipePhotoCachedSize,
		0x0e17e23c: recipePhotoSizeEmpty,
		0x9288dd29: recipePhoto,
		0x2331b22d: recipePhotoEmpty,

		0x87232bc7: recipeDocument,
		0x36f8c871: recipeDocumentEmpty,
		0x6c37c15c: recipeDocAttrImageSize,
		0x11b58939: recipeDocAttrAnimated,
		0x6319d612: recipeDocAttrSticker,
		0x0ef02ce6: recipeDocAttrVideo,
		0x9852f9c6: recipeDocAttrAudio,
		0x15590068: recipeDocAttrFilename,
		0x9801d2f7: recipeDocAttrHasStickers,

		0xffb62b95: recipeInputStickerSetEmpty,
		0x9de7a269: recipeInputStickerSetID,
		0x861cc8a0: recipeInputStickerSetShortName,

		0x5f07b4bc: recipeWebPage,
		0xeb1477e8: recipeWebPageEmpty,

		0x3ded6320: recipeMediaEmpty,
		0x695150d7: recipeMediaPhoto,
		0x56e0d474: recipeMediaGeo,
		0x5e7d2f39: recipeMediaContact,
		0x9cb070d7: recipeMediaDocument,
		0xa32dd600: recipeMediaWebPage,
		0x9f84f49e: recipeMediaUnsupported,

		0x559ebe6d: recipeFwdHeader,

		0xb6aef7b0: recipeActionEmpty,
		0xa6638b9a: recipeActionChatCreate,
		0xb5a1ce5a: recipeActionChatEditTitle,
		0x7fcb13a8: recipeActionChatEditPhoto,
		0x95e3fbef: recipeActionChatDeletePhoto,
		0x488a7337: recipeActionChatAddUser,
		0xb2ae9b0c: recipeActionChatDeleteUser,
		0xf89cf5e8: recipeActionChatJoinedByLink,
		0x95d2ac92: recipeActionChannelCreate,
		0x9fbab604: recipeActionHistoryClear,
		0x94bd38ed: recipeActionPinMessage,
		0x80e11a7f: recipeActionPhoneCall,

		0x3f460fed: recipeChatParticipants,

		0xfa56ce36: recipeEncryptedChat,
		0xc878527e: recipeEncryptedChatRequested,
		0x3bf703dc: recipeEncryptedChatWaiting,
		0x13d6dd27: recipeEncryptedChatDiscarded,
		0xab7ec0a0: recipeEncryptedChatEmpty,

		0xaf509d20: recipePeerNotifySettings,
		0x8ea4a881: recipeUserFull,
	}
}
