package nru

//go:generate mockgen -destination=mock_view_test.go -package=nru_test github.com/djdv/go-nru View
