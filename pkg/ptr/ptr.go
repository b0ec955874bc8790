package ptr

// Of возвращает указатель на копию значения
func Of[T any](v T) *T {
	return &v
}

// ValueOr разыменовывает указатель или возвращает значение по умолчанию
func ValueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
