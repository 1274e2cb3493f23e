package hardware

// BlockDeviceExists reports whether path resolves to a real block device
// node. It is the existence capability injected into config validation so
// the target_drive rule can be checked against the live system.
func BlockDeviceExists(path string) bool {
	return blockDeviceExists(path)
}
