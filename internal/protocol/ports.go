package protocol

import "fmt"

const (
	MinPort = 1024
	MaxPort = 64000
)

// ValidatePort checks that port lies in [MinPort, MaxPort].
func ValidatePort(port int) error {
	if port < MinPort || port > MaxPort {
		return fmt.Errorf("%w: port %d is not in the range [%d, %d]", ErrConfiguration, port, MinPort, MaxPort)
	}
	return nil
}

// ValidatePorts checks the English, Māori and German listening ports.
func ValidatePorts(ports []int) error {
	if len(ports) != LanguageCount {
		return fmt.Errorf("%w: expected %d ports, got %d", ErrConfiguration, LanguageCount, len(ports))
	}
	seen := make(map[int]Language, len(ports))
	for i, port := range ports {
		if err := ValidatePort(port); err != nil {
			return err
		}
		if prev, ok := seen[port]; ok {
			return fmt.Errorf("%w: duplicate port %d for %s and %s", ErrConfiguration, port, prev, Language(i))
		}
		seen[port] = Language(i)
	}
	return nil
}
