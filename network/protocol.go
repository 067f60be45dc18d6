package network

const (
	MsgTypeHeartbeat    = 1
	MsgTypeWelcome      = 101
	MsgTypeJoin         = 102
	MsgTypePlayerJoined = 103
	MsgTypeAct          = 201
	MsgTypeActResult    = 202
	MsgTypePlayerEvent  = 301
	MsgTypeAdminEvent   = 302
	MsgTypeDraftState   = 303
)
