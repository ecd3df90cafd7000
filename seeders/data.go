package seeders

import "research-admin/pkg/constants"

var equipmentData = []string{
	"3D Printer",
	"Atomic Force Microscope",
	"CNC Milling Machine",
	"Centrifuge",
	"FTIR Spectrometer",
	"Gas Chromatograph",
	"HPLC System",
	"Laser Cutter",
	"Oscilloscope",
	"PCR Thermocycler",
	"Scanning Electron Microscope",
	"Signal Generator",
	"Spectrophotometer",
	"Tensile Testing Machine",
	"Thermal Imaging Camera",
	"Universal Testing Machine",
	"Vacuum Oven",
	"Wind Tunnel",
}

type labSeed struct {
	Name         string
	HeadName     string
	HeadEmail    string
	Type         string
	Status       string
	ResearchArea string
	Location     string
	Equipment    map[string]int
}

var labData = []labSeed{
	{
		Name:         "Advanced Materials Lab",
		HeadName:     "Prof. Dr. Aminuddin Rahman",
		HeadEmail:    "aminuddin@university.edu.my",
		Type:         constants.LabTypeResearch,
		Status:       constants.LabStatusActive,
		ResearchArea: "Nanostructured materials and coatings",
		Location:     "Block B, Level 3",
		Equipment: map[string]int{
			"Scanning Electron Microscope": 1,
			"Atomic Force Microscope":      1,
			"Vacuum Oven":                  2,
		},
	},
	{
		Name:         "Robotics and Automation Lab",
		HeadName:     "Assoc. Prof. Dr. Siti Nurhaliza",
		HeadEmail:    "siti.n@university.edu.my",
		Type:         constants.LabTypeTeaching,
		Status:       constants.LabStatusActive,
		ResearchArea: "Industrial robotics, machine vision",
		Location:     "Block A, Level 1",
		Equipment: map[string]int{
			"CNC Milling Machine": 2,
			"3D Printer":          4,
			"Oscilloscope":        6,
			"Signal Generator":    6,
		},
	},
	{
		Name:         "Environmental Analysis Lab",
		HeadName:     "Dr. Lim Wei Jian",
		HeadEmail:    "lim.wj@university.edu.my",
		Type:         constants.LabTypeResearch,
		Status:       constants.LabStatusActive,
		ResearchArea: "Water quality, air pollution monitoring",
		Location:     "Block C, Level 2",
		Equipment: map[string]int{
			"Gas Chromatograph": 1,
			"HPLC System":       1,
			"Spectrophotometer": 2,
			"Centrifuge":        3,
		},
	},
	{
		Name:         "Structures and Testing Lab",
		HeadName:     "Ir. Dr. Kumar Selvam",
		HeadEmail:    "kumar.s@university.edu.my",
		Type:         constants.LabTypeResearch,
		Status:       constants.LabStatusUnderMaintenance,
		ResearchArea: "Structural integrity of composite materials",
		Location:     "Block D, Ground Floor",
		Equipment: map[string]int{
			"Universal Testing Machine": 1,
			"Tensile Testing Machine":   1,
			"Thermal Imaging Camera":    2,
		},
	},
	{
		Name:         "Aerodynamics i-Kohza",
		HeadName:     "Prof. Dr. Hafiz Zulkifli",
		HeadEmail:    "hafiz.z@university.edu.my",
		Type:         constants.LabTypeIKohza,
		Status:       constants.LabStatusActive,
		ResearchArea: "Low-speed aerodynamics, drone airframes",
		Location:     "Block E, Level 1",
		Equipment: map[string]int{
			"Wind Tunnel":      1,
			"3D Printer":       2,
			"Laser Cutter":     1,
			"Oscilloscope":     2,
			"Signal Generator": 2,
		},
	},
}
