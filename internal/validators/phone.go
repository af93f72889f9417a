package validators

// IsPhoneValid accepts exactly 11 numeric digits, nothing else.
func IsPhoneValid(phone string) bool {
	if len(phone) != 11 {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
