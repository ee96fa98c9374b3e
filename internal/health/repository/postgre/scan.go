package postgre

type rowScanner interface {
	Scan(dest ...any) error
}
