package subject

import "errors"

var (
	// ErrSubjectNotFound возвращается, когда услуга или занятие не найдены
	ErrSubjectNotFound = errors.New("subject.repository: subject not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("subject.repository: failed to build query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("subject.repository: failed to scan row")
)
