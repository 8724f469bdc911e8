package domain

type CommandName string

const (
	CommandStart    CommandName = "start"
	CommandToggle   CommandName = "toggle"
	CommandHelp     CommandName = "help"
	CommandDownload CommandName = "download"
	CommandRename   CommandName = "rename"
	CommandStatus   CommandName = "status"
	CommandUnknown  CommandName = "unknown"
)

// Command is a parsed chat command together with the context it was issued in.
type Command struct {
	Name     CommandName
	ChatID   ChatID
	Args     []string
	Document *RemoteFile
}

// Arg returns the i-th argument or an empty string.
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}
