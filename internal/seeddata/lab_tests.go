package seeddata

import "github.com/medora/tenant-seeder/internal/domain/entities"

var labTests = []entities.LabTestCatalogEntry{
	{Name: "Complete Blood Count (CBC)", TestCode: "LAB-001", Category: "Haematology", SampleType: "Blood (EDTA)", TurnaroundTime: "Same day"},
	{Name: "Erythrocyte Sedimentation Rate (ESR)", TestCode: "LAB-002", Category: "Haematology", SampleType: "Blood (EDTA)", TurnaroundTime: "Same day"},
	{Name: "Peripheral Blood Smear", TestCode: "LAB-003", Category: "Haematology", SampleType: "Blood (EDTA)", TurnaroundTime: "24 hours"},
	{Name: "Reticulocyte Count", TestCode: "LAB-004", Category: "Haematology", SampleType: "Blood (EDTA)", TurnaroundTime: "24 hours"},
	{Name: "Prothrombin Time (PT/INR)", TestCode: "LAB-005", Category: "Haematology", SampleType: "Blood (Citrate)", TurnaroundTime: "Same day"},
	{Name: "Activated Partial Thromboplastin Time (aPTT)", TestCode: "LAB-006", Category: "Haematology", SampleType: "Blood (Citrate)", TurnaroundTime: "Same day"},
	{Name: "Blood Group and Rh Typing", TestCode: "LAB-007", Category: "Haematology", SampleType: "Blood (EDTA)", TurnaroundTime: "Same day"},
	{Name: "Fasting Blood Sugar", TestCode: "LAB-008", Category: "Biochemistry", SampleType: "Blood (Fluoride)", TurnaroundTime: "Same day", PreparationInstructions: "Fast for 8-10 hours"},
	{Name: "Post Prandial Blood Sugar", TestCode: "LAB-009", Category: "Biochemistry", SampleType: "Blood (Fluoride)", TurnaroundTime: "Same day", PreparationInstructions: "Collect 2 hours after a meal"},
	{Name: "Random Blood Sugar", TestCode: "LAB-010", Category: "Biochemistry", SampleType: "Blood (Fluoride)", TurnaroundTime: "Same day"},
	{Name: "HbA1c", TestCode: "LAB-011", Category: "Biochemistry", SampleType: "Blood (EDTA)", TurnaroundTime: "Same day"},
	{Name: "Oral Glucose Tolerance Test", TestCode: "LAB-012", Category: "Biochemistry", SampleType: "Blood (Fluoride)", TurnaroundTime: "Same day", PreparationInstructions: "Fast for 8-10 hours; test takes 2 hours"},
	{Name: "Lipid Profile", TestCode: "LAB-013", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "Same day", PreparationInstructions: "Fast for 10-12 hours"},
	{Name: "Liver Function Test (LFT)", TestCode: "LAB-014", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Kidney Function Test (KFT)", TestCode: "LAB-015", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Serum Creatinine", TestCode: "LAB-016", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Blood Urea Nitrogen", TestCode: "LAB-017", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Serum Uric Acid", TestCode: "LAB-018", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Serum Electrolytes", TestCode: "LAB-019", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Serum Calcium", TestCode: "LAB-020", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Serum Magnesium", TestCode: "LAB-021", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "24 hours"},
	{Name: "Serum Amylase", TestCode: "LAB-022", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Serum Lipase", TestCode: "LAB-023", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Iron Studies", TestCode: "LAB-024", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "24 hours", PreparationInstructions: "Morning sample preferred"},
	{Name: "Serum Ferritin", TestCode: "LAB-025", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "24 hours"},
	{Name: "Vitamin D (25-OH)", TestCode: "LAB-026", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "48 hours"},
	{Name: "Vitamin B12", TestCode: "LAB-027", Category: "Biochemistry", SampleType: "Serum", TurnaroundTime: "48 hours"},
	{Name: "Thyroid Profile (T3, T4, TSH)", TestCode: "LAB-028", Category: "Endocrinology", SampleType: "Serum", TurnaroundTime: "24 hours"},
	{Name: "TSH", TestCode: "LAB-029", Category: "Endocrinology", SampleType: "Serum", TurnaroundTime: "24 hours"},
	{Name: "Serum Prolactin", TestCode: "LAB-030", Category: "Endocrinology", SampleType: "Serum", TurnaroundTime: "48 hours", PreparationInstructions: "Sample 2-3 hours after waking"},
	{Name: "Serum Cortisol (Morning)", TestCode: "LAB-031", Category: "Endocrinology", SampleType: "Serum", TurnaroundTime: "48 hours", PreparationInstructions: "Collect between 8 and 9 AM"},
	{Name: "Fasting Insulin", TestCode: "LAB-032", Category: "Endocrinology", SampleType: "Serum", TurnaroundTime: "48 hours", PreparationInstructions: "Fast for 8-10 hours"},
	{Name: "Beta hCG", TestCode: "LAB-033", Category: "Endocrinology", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Troponin I", TestCode: "LAB-034", Category: "Cardiac Markers", SampleType: "Serum", TurnaroundTime: "2 hours"},
	{Name: "CK-MB", TestCode: "LAB-035", Category: "Cardiac Markers", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "NT-proBNP", TestCode: "LAB-036", Category: "Cardiac Markers", SampleType: "Serum", TurnaroundTime: "24 hours"},
	{Name: "D-Dimer", TestCode: "LAB-037", Category: "Cardiac Markers", SampleType: "Blood (Citrate)", TurnaroundTime: "Same day"},
	{Name: "C-Reactive Protein (CRP)", TestCode: "LAB-038", Category: "Immunology", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Rheumatoid Factor", TestCode: "LAB-039", Category: "Immunology", SampleType: "Serum", TurnaroundTime: "24 hours"},
	{Name: "Anti-CCP Antibodies", TestCode: "LAB-040", Category: "Immunology", SampleType: "Serum", TurnaroundTime: "48 hours"},
	{Name: "Antinuclear Antibody (ANA)", TestCode: "LAB-041", Category: "Immunology", SampleType: "Serum", TurnaroundTime: "48 hours"},
	{Name: "HIV 1 & 2 Antibodies", TestCode: "LAB-042", Category: "Serology", SampleType: "Serum", TurnaroundTime: "24 hours", PreparationInstructions: "Pre-test counselling required"},
	{Name: "Hepatitis B Surface Antigen (HBsAg)", TestCode: "LAB-043", Category: "Serology", SampleType: "Serum", TurnaroundTime: "24 hours"},
	{Name: "Hepatitis C Antibody (Anti-HCV)", TestCode: "LAB-044", Category: "Serology", SampleType: "Serum", TurnaroundTime: "24 hours"},
	{Name: "VDRL", TestCode: "LAB-045", Category: "Serology", SampleType: "Serum", TurnaroundTime: "24 hours"},
	{Name: "Widal Test", TestCode: "LAB-046", Category: "Serology", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Dengue NS1 Antigen", TestCode: "LAB-047", Category: "Serology", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Dengue IgG/IgM", TestCode: "LAB-048", Category: "Serology", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Malaria Antigen (Rapid)", TestCode: "LAB-049", Category: "Serology", SampleType: "Blood (EDTA)", TurnaroundTime: "2 hours"},
	{Name: "Typhoid IgM", TestCode: "LAB-050", Category: "Serology", SampleType: "Serum", TurnaroundTime: "Same day"},
	{Name: "Urine Routine and Microscopy", TestCode: "LAB-051", Category: "Clinical Pathology", SampleType: "Urine", TurnaroundTime: "Same day", PreparationInstructions: "First morning midstream sample"},
	{Name: "Urine Culture and Sensitivity", TestCode: "LAB-052", Category: "Microbiology", SampleType: "Urine", TurnaroundTime: "72 hours", PreparationInstructions: "Midstream sample in sterile container before antibiotics"},
	{Name: "Urine Microalbumin", TestCode: "LAB-053", Category: "Clinical Pathology", SampleType: "Urine", TurnaroundTime: "24 hours"},
	{Name: "Stool Routine Examination", TestCode: "LAB-054", Category: "Clinical Pathology", SampleType: "Stool", TurnaroundTime: "Same day"},
	{Name: "Stool Occult Blood", TestCode: "LAB-055", Category: "Clinical Pathology", SampleType: "Stool", TurnaroundTime: "24 hours", PreparationInstructions: "Avoid red meat for 3 days before"},
	{Name: "Blood Culture and Sensitivity", TestCode: "LAB-056", Category: "Microbiology", SampleType: "Blood (Culture bottle)", TurnaroundTime: "5 days", PreparationInstructions: "Collect before starting antibiotics"},
	{Name: "Sputum AFB Stain", TestCode: "LAB-057", Category: "Microbiology", SampleType: "Sputum", TurnaroundTime: "24 hours", PreparationInstructions: "Early morning sample on two consecutive days"},
	{Name: "Throat Swab Culture", TestCode: "LAB-058", Category: "Microbiology", SampleType: "Swab", TurnaroundTime: "72 hours"},
	{Name: "Prostate Specific Antigen (PSA)", TestCode: "LAB-059", Category: "Tumour Markers", SampleType: "Serum", TurnaroundTime: "24 hours", PreparationInstructions: "Avoid ejaculation and cycling for 48 hours before"},
	{Name: "CA-125", TestCode: "LAB-060", Category: "Tumour Markers", SampleType: "Serum", TurnaroundTime: "48 hours"},
}
