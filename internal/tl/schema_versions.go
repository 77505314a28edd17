package tl

// Message, user and chat constructors changed shape between releases, so
// they live in per-version tables. The 5.6.2 table keeps every 5.5.0 tag
// (old rows survive an app upgrade in place) and adds the tags the newer
// release writes.

var (
	recipeMessageEmpty = recipe("message_empty", i32("id"))

	recipeMessage = recipe("message",
		i32("id"), i32("from_id"), obj("to_id"), i32("date"),
		str("message"), obj("media"))

	recipeMessageForwarded = recipe("message_forwarded",
		i32("id"), obj("fwd_from"), i32("from_id"), obj("to_id"),
		i32("date"), str("message"), obj("media"))

	recipeMessageService = recipe("message_service",
		i32("id"), i32("from_id"), obj("to_id"), i32("date"), obj("action"))

	recipeUserEmpty = recipe("user_empty", i32("id"))

	// 5.5.0 user layout.
	recipeUserV1 = recipe("user",
		i32("id"), str("first_name"), str("last_name"), str("username"),
		str("phone"), obj("photo"), obj("status"))

	// 5.6.2 added the access hash next to the id.
	recipeUserV2 = recipe("user",
		i32("id"), i64("access_hash"), str("first_name"), str("last_name"),
		str("username"), str("phone"), obj("photo"), obj("status"))

	recipeChatEmpty = recipe("chat_empty", i32("id"))

	recipeChat = recipe("chat",
		i32("id"), str("title"), obj("photo"), i32("participants_count"),
		i32("date"), i32("version"))

	recipeChatForbidden = recipe("chat_forbidden", i32("id"), str("title"))

	recipeChannel = recipe("channel",
		i32("id"), i64("access_hash"), str("title"), str("username"),
		obj("photo"), i32("date"), i32("version"))

	recipeChannelForbidden = recipe("channel_forbidden",
		i32("id"), i64("access_hash"), str("title"))
)

func schema550() map[uint32]*Recipe {
	return map[uint32]*Recipe{
		0x83e5de54: recipeMessageEmpty,
		0x44f9b43d: recipeMessage,
		0xa367e716: recipeMessageForwarded,
		0x9e19a1f6: recipeMessageService,

		0x200250ba: recipeUserEmpty,
		0x2e13f4c3: recipeUserV1,

		0x9ba2d800: recipeChatEmpty,
		0xd91cdd54: recipeChat,
		0x07328bdb: recipeChatForbidden,
		0x4df30834: recipeChannel,
		0x289da732: recipeChannelForbidden,
	}
}

func schema562() map[uint32]*Recipe {
	return map[uint32]*Recipe{
		0x83e5de54: recipeMessageEmpty,
		0x44f9b43d: recipeMessage,
		0xa367e716: recipeMessageForwarded,
		0x9e19a1f6: recipeMessageService,

		0x200250ba: recipeUserEmpty,
		0x2e13f4c3: recipeUserV1,
		0x938458c1: recipeUserV2,

		0x9ba2d800: recipeChatEmpty,
		0xd91cdd54: recipeChat,
		0x07328bdb: recipeChatForbidden,
		0x4df30834: recipeChannel,
		0x289da732: recipeChannelForbidden,
	}
}
