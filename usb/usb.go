package usb

import (
	"fmt"

	"github.com/drichelson/libusb"
	"github.com/kpango/glg"

	"github.com/drichelson/hsvleds/hsv"
)

const (
	teensyVendorID  = 5824
	teensyProductID = 1155

	bulkInterface = 1
	bulkEndpoint  = 3
	bulkTimeoutMs = 20
)

// Frame header understood by the Teensy firmware.
var header = [...]byte{'*', 238, 2}

var (
	ctx          *libusb.Context
	deviceHandle *libusb.DeviceHandle
)

// RenderPackage is one frame: the pixels in wiring order and the global
// brightness applied on the way out.
type RenderPackage struct {
	Pixels     []hsv.CRGB
	Brightness uint8
}

// Initialize opens the Teensy and claims its bulk interface. Any previous
// handle is released first, so it can be called again after Render fails.
func Initialize() error {
	Close()
	ShowVersion()
	var err error
	ctx, err = libusb.Init()
	if err != nil {
		return fmt.Errorf("initializing libusb: %w", err)
	}

	_, deviceHandle, err = ctx.OpenDeviceWithVendorProduct(teensyVendorID, teensyProductID)
	if err != nil {
		deviceHandle = nil
		return fmt.Errorf("opening device %d:%d: %w", teensyVendorID, teensyProductID, err)
	}
	showInfo(ctx, "Teensy", teensyVendorID, teensyProductID)
	if err = deviceHandle.ClaimInterface(bulkInterface); err != nil {
		return fmt.Errorf("claiming bulk transfer interface: %w", err)
	}
	return nil
}

// Close releases the device and the libusb context.
func Close() {
	if deviceHandle != nil {
		if err := deviceHandle.Close(); err != nil {
			glg.Warnf("closing device: %v", err)
		}
		deviceHandle = nil
	}
	if ctx != nil {
		if err := ctx.Exit(); err != nil {
			glg.Warnf("closing libusb: %v", err)
		}
		ctx = nil
	}
}

// Encode lays a frame out the way the firmware reads it: the header, then
// R, G, B for each pixel scaled by the package brightness.
func Encode(pkg RenderPackage) []byte {
	data := make([]byte, len(header)+len(pkg.Pixels)*3)
	n := copy(data, header[:])
	for _, c := range pkg.Pixels {
		c = c.Scaled(pkg.Brightness)
		data[n] = c.R
		data[n+1] = c.G
		data[n+2] = c.B
		n += 3
	}
	return data
}

// Render sends one frame.
func Render(pkg RenderPackage) error {
	if deviceHandle == nil {
		return ErrNotInitialized
	}
	data := Encode(pkg)
	_, err := deviceHandle.BulkTransfer(libusb.EndpointAddress(bulkEndpoint), data, len(data), bulkTimeoutMs)
	if err != nil {
		return fmt.Errorf("bulk transfer of %d bytes: %w", len(data), err)
	}
	return nil
}

// ShowVersion logs the linked libusb version.
func ShowVersion() {
	version := libusb.GetVersion()
	glg.Infof(
		"Using libusb version %d.%d.%d (%d)",
		version.Major,
		version.Minor,
		version.Micro,
		version.Nano,
	)
}

func showInfo(ctx *libusb.Context, name string, vendorID, productID uint16) {
	usbDevice, usbDeviceHandle, err := ctx.OpenDeviceWithVendorProduct(vendorID, productID)
	if err != nil {
		glg.Warnf("Could not open %s for inspection: %v", name, err)
		return
	}
	defer usbDeviceHandle.Close()
	usbDeviceDescriptor, err := usbDevice.GetDeviceDescriptor()
	if err != nil {
		glg.Warnf("Failed reading the %s descriptor: %v", name, err)
		return
	}
	serialnum, _ := usbDeviceHandle.GetStringDescriptorASCII(
		usbDeviceDescriptor.SerialNumberIndex,
	)
	manufacturer, _ := usbDeviceHandle.GetStringDescriptorASCII(
		usbDeviceDescriptor.ManufacturerIndex)
	product, _ := usbDeviceHandle.GetStringDescriptorASCII(
		usbDeviceDescriptor.ProductIndex)
	glg.Infof("Found %v %v S/N %s using Vendor ID %v and Product ID %v",
		manufacturer,
		product,
		serialnum,
		vendorID,
		productID,
	)
	configDescriptor, err := usbDevice.GetActiveConfigDescriptor()
	if err != nil {
		glg.Warnf("Failed getting the active config: %v", err)
		return
	}
	glg.Infof("=> Max Power = %d mA, %d interface(s)",
		configDescriptor.MaxPowerMilliAmperes, configDescriptor.NumInterfaces)

	for i, supportedInterface := range configDescriptor.SupportedInterfaces {
		descriptor := supportedInterface.InterfaceDescriptors[0]
		glg.Debugf("=> interface %d: number %d, %d alternate settings, %d endpoint(s)",
			i, descriptor.InterfaceNumber, supportedInterface.NumAltSettings, descriptor.NumEndpoints)
		for j, endpoint := range descriptor.EndpointDescriptors {
			glg.Debugf("   => endpoint %d: address %d (b%08b), direction %s, transfer type %s, max packet %d",
				j,
				endpoint.EndpointAddress,
				endpoint.EndpointAddress,
				endpoint.Direction(),
				endpoint.TransferType(),
				endpoint.MaxPacketSize)
		}
	}
}
