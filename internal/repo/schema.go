package repo

const (
	tableMigrations = "schema_migrations"
	tableBoards     = "boards"
	tableThreads    = "threads"
	tablePosts      = "posts"
	tableAdmins     = "admins"
)

const (
	colID            = "id"
	colName          = "name"
	colTitle         = "title"
	colFilesizeLimit = "filesize_limit"
	colWorksafe      = "worksafe"
	colBumpLimit     = "bump_limit"
	colBoard         = "board"
	colSticky        = "sticky"
	colLastBump      = "last_bump"
	colThread        = "thread"
	colDate          = "date"
	colSubject       = "subject"
	colEmail         = "email"
	colComment       = "comment"
	colIP            = "ip"
	colIdent         = "ident"
	colPasswordHash  = "password_hash"
	colRole          = "role"
	colCreatedAt     = "created_at"
	colDeleted       = "deleted"
)

// live — условие для строк, не снятых модерацией
const live = ` AND NOT ` + colDeleted
