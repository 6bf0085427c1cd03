package protocol

// CommandType is the 8-bit (wire: 32-bit, high 24 bits zero) command
// code carried in every frame header.
type CommandType uint32

const (
	CmdUDP              CommandType = 0
	CmdApConfig         CommandType = 1
	CmdActive           CommandType = 2
	CmdBind             CommandType = 3
	CmdRenameGw         CommandType = 4
	CmdRenameDevice     CommandType = 5
	CmdUnbind           CommandType = 6
	CmdControl          CommandType = 7
	CmdStatus           CommandType = 8
	CmdHeartBeat        CommandType = 9
	CmdDpQuery          CommandType = 10
	CmdQueryWifi        CommandType = 11
	CmdTokenBind        CommandType = 12
	CmdControlNew       CommandType = 13
	CmdEnableWifi       CommandType = 14
	CmdDpQueryNew       CommandType = 16
	CmdSceneExecute     CommandType = 17
	CmdDpRefresh        CommandType = 18
	CmdUDPNew           CommandType = 19
	CmdApConfigNew      CommandType = 20
	CmdLanGwActive      CommandType = 240
	CmdLanSubDevRequest CommandType = 241
	CmdLanDeleteSubDev  CommandType = 242
	CmdLanReportSubDev  CommandType = 243
	CmdLanScene         CommandType = 244
	CmdLanPublishCloud  CommandType = 245
	CmdLanPublishApp    CommandType = 246
	CmdLanExportApp     CommandType = 247
	CmdLanPublishScene  CommandType = 248
	CmdLanWifiInfo      CommandType = 249
	CmdLanRemoveGw      CommandType = 250
	CmdLanCheckGwUpdate CommandType = 251
	CmdLanSetGwChannel  CommandType = 252
	CmdError            CommandType = 255
)

var commandNames = map[CommandType]string{
	CmdUDP:              "Udp",
	CmdApConfig:         "ApConfig",
	CmdActive:           "Active",
	CmdBind:             "Bind",
	CmdRenameGw:         "RenameGw",
	CmdRenameDevice:     "RenameDevice",
	CmdUnbind:           "Unbind",
	CmdControl:          "Control",
	CmdStatus:           "Status",
	CmdHeartBeat:        "HeartBeat",
	CmdDpQuery:          "DpQuery",
	CmdQueryWifi:        "QueryWifi",
	CmdTokenBind:        "TokenBind",
	CmdControlNew:       "ControlNew",
	CmdEnableWifi:       "EnableWifi",
	CmdDpQueryNew:       "DpQueryNew",
	CmdSceneExecute:     "SceneExecute",
	CmdDpRefresh:        "DpRefresh",
	CmdUDPNew:           "UdpNew",
	CmdApConfigNew:      "ApConfigNew",
	CmdLanGwActive:      "LanGwActive",
	CmdLanSubDevRequest: "LanSubDevRequest",
	CmdLanDeleteSubDev:  "LanDeleteSubDev",
	CmdLanReportSubDev:  "LanReportSubDev",
	CmdLanScene:         "LanScene",
	CmdLanPublishCloud:  "LanPublishCloudConfig",
	CmdLanPublishApp:    "LanPublishAppConfig",
	CmdLanExportApp:     "LanExportAppConfig",
	CmdLanPublishScene:  "LanPublishScenePanel",
	CmdLanWifiInfo:      "LanWifiInfo",
	CmdLanRemoveGw:      "LanRemoveGw",
	CmdLanCheckGwUpdate: "LanCheckGwUpdate",
	CmdLanSetGwChannel:  "LanSetGwChannel",
	CmdError:            "Error",
}

// String returns the table name for c, or "Unknown" for an
// unrecognized code.
func (c CommandType) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "Unknown"
}

// lookupCommand returns the known CommandType for raw, and false if raw
// is not in the fixed table. Unknown codes are carried as command=None
// by callers, not rejected.
func lookupCommand(raw uint32) (CommandType, bool) {
	c := CommandType(raw)
	_, ok := commandNames[c]
	return c, ok
}
