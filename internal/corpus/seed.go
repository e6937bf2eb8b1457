package corpus

import "github.com/rcliao/uaforge/internal/model"

// AndroidDevices is the built-in Android device table.
var AndroidDevices = []model.AndroidDevice{
	{Manufacturer: "Samsung", Model: "Galaxy S24 Ultra", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy S24+ 5G", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy S24 5G", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy S23 Ultra", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy S23+ 5G", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy S23 5G", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy Z Fold5 5G", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy Z Flip5 5G", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy S23 FE 5G", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy A54 5G", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy A53 5G", OSVersion: "13.0"},
	{Manufacturer: "Samsung", Model: "Galaxy A34 5G", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy A25 5G", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy A15 5G", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy Tab S9 Ultra", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy Tab S9+", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy Tab S9", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy Tab S9 FE+", OSVersion: "14.0"},
	{Manufacturer: "Samsung", Model: "Galaxy Tab S9 FE", OSVersion: "14.0"},
	{Manufacturer: "Google", Model: "Pixel 8 Pro", OSVersion: "14.0"},
	{Manufacturer: "Google", Model: "Pixel 8", OSVersion: "14.0"},
	{Manufacturer: "Google", Model: "Pixel 7a", OSVersion: "14.0"},
	{Manufacturer: "Google", Model: "Pixel 7 Pro", OSVersion: "14.0"},
	{Manufacturer: "Google", Model: "Pixel 7", OSVersion: "14.0"},
	{Manufacturer: "Google", Model: "Pixel Fold", OSVersion: "14.0"},
	{Manufacturer: "Google", Model: "Pixel Tablet", OSVersion: "14.0"},
	{Manufacturer: "Google", Model: "Pixel 6a", OSVersion: "14.0"},
	{Manufacturer: "OnePlus", Model: "12", OSVersion: "14.0"},
	{Manufacturer: "OnePlus", Model: "12R", OSVersion: "14.0"},
	{Manufacturer: "OnePlus", Model: "11 5G", OSVersion: "14.0"},
	{Manufacturer: "OnePlus", Model: "10T 5G", OSVersion: "14.0"},
	{Manufacturer: "OnePlus", Model: "10 Pro", OSVersion: "14.0"},
	{Manufacturer: "OnePlus", Model: "Nord N30 5G", OSVersion: "13.0"},
	{Manufacturer: "OnePlus", Model: "Nord N20 5G", OSVersion: "13.0"},
	{Manufacturer: "Motorola", Model: "Edge+ 2023", OSVersion: "14.0"},
	{Manufacturer: "Motorola", Model: "Edge 2023", OSVersion: "14.0"},
	{Manufacturer: "Motorola", Model: "Razr+ 2023", OSVersion: "14.0"},
	{Manufacturer: "Motorola", Model: "Razr 2023", OSVersion: "14.0"},
	{Manufacturer: "Motorola", Model: "Edge 40 Pro", OSVersion: "14.0"},
	{Manufacturer: "Motorola", Model: "Edge 40 Neo", OSVersion: "14.0"},
	{Manufacturer: "Motorola", Model: "Moto G Stylus 5G 2024", OSVersion: "14.0"},
	{Manufacturer: "Motorola", Model: "Moto G Power 5G 2024", OSVersion: "14.0"},
	{Manufacturer: "Motorola", Model: "Moto G 5G 2024", OSVersion: "14.0"},
	{Manufacturer: "Nothing", Model: "Phone (2a)", OSVersion: "14.0"},
	{Manufacturer: "Nothing", Model: "Phone (2)", OSVersion: "14.0"},
	{Manufacturer: "Nothing", Model: "Phone (1)", OSVersion: "14.0"},
	{Manufacturer: "ASUS", Model: "ROG Phone 8 Pro", OSVersion: "14.0"},
	{Manufacturer: "ASUS", Model: "ROG Phone 8", OSVersion: "14.0"},
	{Manufacturer: "ASUS", Model: "Zenfone 10", OSVersion: "14.0"},
	{Manufacturer: "ASUS", Model: "ROG Phone 7 Ultimate", OSVersion: "14.0"},
	{Manufacturer: "Sony", Model: "Xperia 1 V", OSVersion: "14.0"},
	{Manufacturer: "Sony", Model: "Xperia 5 V", OSVersion: "14.0"},
	{Manufacturer: "Sony", Model: "Xperia 10 V", OSVersion: "14.0"},
	{Manufacturer: "OPPO", Model: "Find X7 Ultra", OSVersion: "14.0"},
	{Manufacturer: "OPPO", Model: "Find X7 Pro", OSVersion: "14.0"},
	{Manufacturer: "OPPO", Model: "Find X7", OSVersion: "14.0"},
	{Manufacturer: "Xiaomi", Model: "14 Ultra", OSVersion: "14.0"},
	{Manufacturer: "Xiaomi", Model: "14 Pro", OSVersion: "14.0"},
	{Manufacturer: "Xiaomi", Model: "14", OSVersion: "14.0"},
	{Manufacturer: "TCL", Model: "50 XE 5G", OSVersion: "14.0"},
	{Manufacturer: "TCL", Model: "50 XL 5G", OSVersion: "14.0"},
	{Manufacturer: "TCL", Model: "50 LE 5G", OSVersion: "14.0"},
}

// IOSDevices is the built-in iPhone and iPad table.
var IOSDevices = []model.IOSDevice{
	{Model: "iPhone 15 Pro Max", OSVersion: "17.3.1"},
	{Model: "iPhone 15 Pro Max", OSVersion: "17.3"},
	{Model: "iPhone 15 Pro Max", OSVersion: "17.2.1"},
	{Model: "iPhone 15 Pro", OSVersion: "17.3.1"},
	{Model: "iPhone 15 Pro", OSVersion: "17.3"},
	{Model: "iPhone 15 Pro", OSVersion: "17.2.1"},
	{Model: "iPhone 15 Plus", OSVersion: "17.3.1"},
	{Model: "iPhone 15 Plus", OSVersion: "17.3"},
	{Model: "iPhone 15 Plus", OSVersion: "17.2.1"},
	{Model: "iPhone 15", OSVersion: "17.3.1"},
	{Model: "iPhone 15", OSVersion: "17.3"},
	{Model: "iPhone 15", OSVersion: "17.2.1"},
	{Model: "iPhone 14 Pro Max", OSVersion: "17.3.1"},
	{Model: "iPhone 14 Pro Max", OSVersion: "17.2.1"},
	{Model: "iPhone 14 Pro Max", OSVersion: "16.7.2"},
	{Model: "iPhone 14 Pro", OSVersion: "17.3.1"},
	{Model: "iPhone 14 Pro", OSVersion: "17.2.1"},
	{Model: "iPhone 14 Pro", OSVersion: "16.7.2"},
	{Model: "iPhone 14 Plus", OSVersion: "17.3.1"},
	{Model: "iPhone 14 Plus", OSVersion: "17.2.1"},
	{Model: "iPhone 14 Plus", OSVersion: "16.7.2"},
	{Model: "iPhone 14", OSVersion: "17.3.1"},
	{Model: "iPhone 14", OSVersion: "17.2.1"},
	{Model: "iPhone 14", OSVersion: "16.7.2"},
	{Model: "iPhone 13 Pro Max", OSVersion: "17.3.1"},
	{Model: "iPhone 13 Pro Max", OSVersion: "17.2.1"},
	{Model: "iPhone 13 Pro Max", OSVersion: "16.7.2"},
	{Model: "iPhone 13 Pro", OSVersion: "17.3.1"},
	{Model: "iPhone 13 Pro", OSVersion: "17.2.1"},
	{Model: "iPhone 13 Pro", OSVersion: "16.7.2"},
	{Model: "iPhone 13", OSVersion: "17.3.1"},
	{Model: "iPhone 13", OSVersion: "17.2.1"},
	{Model: "iPhone 13", OSVersion: "16.7.2"},
	{Model: "iPhone 13 mini", OSVersion: "17.3.1"},
	{Model: "iPhone 13 mini", OSVersion: "17.2.1"},
	{Model: "iPhone 13 mini", OSVersion: "16.7.2"},
	{Model: "iPhone 12 Pro Max", OSVersion: "17.3.1"},
	{Model: "iPhone 12 Pro Max", OSVersion: "16.7.2"},
	{Model: "iPhone 12 Pro", OSVersion: "17.3.1"},
	{Model: "iPhone 12 Pro", OSVersion: "16.7.2"},
	{Model: "iPhone 12", OSVersion: "17.3.1"},
	{Model: "iPhone 12", OSVersion: "16.7.2"},
	{Model: "iPhone 12 mini", OSVersion: "17.3.1"},
	{Model: "iPhone 12 mini", OSVersion: "16.7.2"},
	{Model: "iPad Pro (12.9-inch) (6th generation)", OSVersion: "17.3.1"},
	{Model: "iPad Pro (12.9-inch) (6th generation)", OSVersion: "17.2.1"},
	{Model: "iPad Pro (11-inch) (4th generation)", OSVersion: "17.3.1"},
	{Model: "iPad Pro (11-inch) (4th generation)", OSVersion: "17.2.1"},
	{Model: "iPad Air (5th generation)", OSVersion: "17.3.1"},
	{Model: "iPad Air (5th generation)", OSVersion: "17.2.1"},
	{Model: "iPad mini (6th generation)", OSVersion: "17.3.1"},
	{Model: "iPad mini (6th generation)", OSVersion: "17.2.1"},
}

// ChromeVersions lists Chrome for Android releases.
var ChromeVersions = []model.BrowserVersion{
	{Version: "121.0.6167.85", Build: "6167.85"},
	{Version: "121.0.6167.78", Build: "6167.78"},
	{Version: "121.0.6167.71", Build: "6167.71"},
	{Version: "121.0.6167.65", Build: "6167.65"},
	{Version: "121.0.6167.59", Build: "6167.59"},
	{Version: "120.0.6099.230", Build: "6099.230"},
	{Version: "120.0.6099.224", Build: "6099.224"},
	{Version: "120.0.6099.216", Build: "6099.216"},
	{Version: "120.0.6099.210", Build: "6099.210"},
	{Version: "120.0.6099.200", Build: "6099.200"},
	{Version: "120.0.6099.195", Build: "6099.195"},
	{Version: "120.0.6099.180", Build: "6099.180"},
	{Version: "120.0.6099.175", Build: "6099.175"},
	{Version: "120.0.6099.155", Build: "6099.155"},
	{Version: "119.0.6045.200", Build: "6045.200"},
	{Version: "119.0.6045.195", Build: "6045.195"},
	{Version: "119.0.6045.190", Build: "6045.190"},
	{Version: "119.0.6045.185", Build: "6045.185"},
	{Version: "119.0.6045.180", Build: "6045.180"},
	{Version: "118.0.5993.175", Build: "5993.175"},
	{Version: "118.0.5993.170", Build: "5993.170"},
	{Version: "118.0.5993.165", Build: "5993.165"},
}

// SafariVersions lists Mobile Safari releases, including iPad-specific builds.
var SafariVersions = []model.BrowserVersion{
	{Version: "17.3.1", Build: "17617.3.1.11.12"},
	{Version: "17.3", Build: "17617.3.0.11.12"},
	{Version: "17.2.1", Build: "17617.2.4.11.12"},
	{Version: "17.2", Build: "17617.2.3.11.12"},
	{Version: "17.1.2", Build: "17617.1.17.11.13"},
	{Version: "17.1.1", Build: "17617.1.17.11.12"},
	{Version: "17.1", Build: "17617.1.17.11.11"},
	{Version: "17.0.1", Build: "17617.1.17.11.10"},
	{Version: "17.0", Build: "17617.1.17.11.9"},
	{Version: "16.6.1", Build: "16616.4.9.1.13"},
	{Version: "16.6", Build: "16616.4.9.1.12"},
	{Version: "16.5.2", Build: "16615.3.12.11.2"},
	{Version: "16.5.1", Build: "16615.3.12.11.1"},
	{Version: "16.5", Build: "16615.3.12.11.0"},
	{Version: "16.4.1", Build: "16614.3.7.11.3"},
	{Version: "16.4", Build: "16614.3.7.11.2"},
	{Version: "17.3.1", Build: "17617.3.1.11.12.1"},
	{Version: "17.3", Build: "17617.3.0.11.12.1"},
	{Version: "17.2.1", Build: "17617.2.4.11.12.1"},
	{Version: "17.2", Build: "17617.2.3.11.12.1"},
	{Version: "17.1", Build: "17617.1.17.11.12.1"},
}

// Builtin returns a corpus over the built-in tables.
func Builtin() *Corpus {
	return New(AndroidDevices, IOSDevices, ChromeVersions, SafariVersions)
}

// Manufacturers returns the distinct manufacturers of devices, in first-seen order.
func Manufacturers(devices []model.AndroidDevice) []string {
	seen := map[string]bool{}
	var out []string
	for _, d := range devices {
		if !seen[d.Manufacturer] {
			seen[d.Manufacturer] = true
			out = append(out, d.Manufacturer)
		}
	}
	return out
}
