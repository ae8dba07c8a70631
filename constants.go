package ircv3

// Protocol delimiters
const (
	// CRLF is the line terminator for IRC lines
	CRLF = "\r\n"

	// Space separates message tokens
	Space = " "
)

// Command verbs used by the typed views in this package. Any textual verb
// or three-digit numeric can be carried by a Message; these constants cover
// the common chat surface plus the IRCv3 extension vocabulary.
const (
	CmdPrivMsg      = "PRIVMSG"
	CmdNotice       = "NOTICE"
	CmdJoin         = "JOIN"
	CmdPart         = "PART"
	CmdPing         = "PING"
	CmdPong         = "PONG"
	CmdNick         = "NICK"
	CmdUser         = "USER"
	CmdPass         = "PASS"
	CmdMode         = "MODE"
	CmdTopic        = "TOPIC"
	CmdKick         = "KICK"
	CmdQuit         = "QUIT"
	CmdAuthenticate = "AUTHENTICATE"

	// IRCv3 extensions
	CmdCap    = "CAP"
	CmdTagMsg = "TAGMSG"
	CmdBatch  = "BATCH"
)

// CAP subcommands
const (
	CapLS   = "LS"
	CapList = "LIST"
	CapReq  = "REQ"
	CapAck  = "ACK"
	CapNak  = "NAK"
	CapEnd  = "END"
	CapNew  = "NEW"
	CapDel  = "DEL"
)

// Numeric reply codes. Numerics are fixed-width three-digit strings, never
// integers, so leading zeros survive.
const (
	ReplyWelcome  = "001" // RPL_WELCOME
	ReplyYourHost = "002" // RPL_YOURHOST
	ReplyCreated  = "003" // RPL_CREATED
	ReplyMyInfo   = "004" // RPL_MYINFO
	ReplyISupport = "005" // RPL_ISUPPORT

	ReplyMOTD      = "372" // RPL_MOTD
	ReplyMOTDStart = "375" // RPL_MOTDSTART
	ReplyEndOfMOTD = "376" // RPL_ENDOFMOTD

	ErrUnknownCommand = "421" // ERR_UNKNOWNCOMMAND
	ErrNicknameInUse  = "433" // ERR_NICKNAMEINUSE
)

// Protocol limits
const (
	// MaxLineLength is the default maximum length of the message body
	// (source, verb, parameters and CRLF), in bytes. The tag section has
	// its own budget and does not count toward this limit. A negotiated
	// LINELEN can raise it per call via LineMax.
	MaxLineLength = 512

	// MaxTagsLength is the maximum length of the tag section, including
	// the leading '@' and the trailing space.
	MaxTagsLength = 8191

	// MaxParams is the maximum number of parameters a message may carry.
	MaxParams = 15
)
