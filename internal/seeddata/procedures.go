package seeddata

import "github.com/medora/tenant-seeder/internal/domain/entities"

var procedures = []entities.ProcedureCatalogEntry{
	{Name: "General Consultation", ProcedureCode: "PROC-001", Department: "General Medicine", Category: "Consultation", Duration: "15 mins", Description: "Outpatient consultation with history and examination"},
	{Name: "Follow-up Consultation", ProcedureCode: "PROC-002", Department: "General Medicine", Category: "Consultation", Duration: "10 mins", Description: "Review of progress and medication"},
	{Name: "Wound Dressing", ProcedureCode: "PROC-003", Department: "General Surgery", Category: "Minor Procedure", Duration: "20 mins", Description: "Cleaning and dressing of superficial wounds"},
	{Name: "Suturing of Laceration", ProcedureCode: "PROC-004", Department: "General Surgery", Category: "Minor Procedure", Duration: "30 mins", Description: "Closure of simple lacerations under local anaesthesia"},
	{Name: "Incision and Drainage of Abscess", ProcedureCode: "PROC-005", Department: "General Surgery", Category: "Minor Procedure", Duration: "30 mins", Description: "Drainage of a superficial abscess under local anaesthesia", PreparationInstructions: "Fasting not required"},
	{Name: "Ingrown Toenail Removal", ProcedureCode: "PROC-006", Department: "General Surgery", Category: "Minor Procedure", Duration: "30 mins", Description: "Partial nail avulsion under digital block"},
	{Name: "Lipoma Excision", ProcedureCode: "PROC-007", Department: "General Surgery", Category: "Minor Surgery", Duration: "45 mins", Description: "Excision of a subcutaneous lipoma", PreparationInstructions: "Stop blood thinners 5 days before if advised"},
	{Name: "Sebaceous Cyst Excision", ProcedureCode: "PROC-008", Department: "General Surgery", Category: "Minor Surgery", Duration: "45 mins", Description: "Excision of a sebaceous cyst with closure", PreparationInstructions: "Stop blood thinners 5 days before if advised"},
	{Name: "Circumcision", ProcedureCode: "PROC-009", Department: "General Surgery", Category: "Day Care Surgery", Duration: "60 mins", Description: "Surgical removal of foreskin", PreparationInstructions: "Fast for 6 hours before the procedure"},
	{Name: "Hernia Repair (Laparoscopic)", ProcedureCode: "PROC-010", Department: "General Surgery", Category: "Major Surgery", Duration: "120 mins", Description: "Laparoscopic mesh repair of inguinal hernia", PreparationInstructions: "Fast for 8 hours; pre-anaesthetic check required"},
	{Name: "Laparoscopic Cholecystectomy", ProcedureCode: "PROC-011", Department: "General Surgery", Category: "Major Surgery", Duration: "90 mins", Description: "Removal of gallbladder by keyhole surgery", PreparationInstructions: "Fast for 8 hours; pre-anaesthetic check required"},
	{Name: "Appendectomy", ProcedureCode: "PROC-012", Department: "General Surgery", Category: "Major Surgery", Duration: "60 mins", Description: "Surgical removal of the appendix", PreparationInstructions: "Fast for 8 hours"},
	{Name: "Electrocardiogram (ECG)", ProcedureCode: "PROC-013", Department: "Cardiology", Category: "Diagnostic", Duration: "15 mins", Description: "12-lead resting ECG"},
	{Name: "2D Echocardiography", ProcedureCode: "PROC-014", Department: "Cardiology", Category: "Diagnostic", Duration: "30 mins", Description: "Ultrasound assessment of heart structure and function"},
	{Name: "Treadmill Test (TMT)", ProcedureCode: "PROC-015", Department: "Cardiology", Category: "Diagnostic", Duration: "45 mins", Description: "Exercise stress test", PreparationInstructions: "Wear comfortable shoes; avoid heavy meal 2 hours before"},
	{Name: "Holter Monitoring (24 hours)", ProcedureCode: "PROC-016", Department: "Cardiology", Category: "Diagnostic", Duration: "24 hours", Description: "Continuous ambulatory ECG recording", PreparationInstructions: "Avoid bathing during recording"},
	{Name: "Coronary Angiography", ProcedureCode: "PROC-017", Department: "Cardiology", Category: "Interventional", Duration: "60 mins", Description: "Imaging of coronary arteries with contrast", PreparationInstructions: "Fast for 6 hours; bring kidney function report"},
	{Name: "Pulmonary Function Test", ProcedureCode: "PROC-018", Department: "Pulmonology", Category: "Diagnostic", Duration: "30 mins", Description: "Spirometry with bronchodilator reversibility", PreparationInstructions: "Avoid inhalers 6 hours before if advised"},
	{Name: "Nebulisation", ProcedureCode: "PROC-019", Department: "Pulmonology", Category: "Therapeutic", Duration: "15 mins", Description: "Inhaled bronchodilator therapy"},
	{Name: "Upper GI Endoscopy", ProcedureCode: "PROC-020", Department: "Gastroenterology", Category: "Diagnostic", Duration: "20 mins", Description: "Endoscopic examination of oesophagus, stomach and duodenum", PreparationInstructions: "Fast for 8 hours"},
	{Name: "Colonoscopy", ProcedureCode: "PROC-021", Department: "Gastroenterology", Category: "Diagnostic", Duration: "45 mins", Description: "Endoscopic examination of the colon", PreparationInstructions: "Bowel preparation the evening before; clear liquids only"},
	{Name: "Ultrasound Abdomen", ProcedureCode: "PROC-022", Department: "Radiology", Category: "Imaging", Duration: "20 mins", Description: "Ultrasound of abdominal organs", PreparationInstructions: "Fast for 6 hours; full bladder"},
	{Name: "Ultrasound Pelvis", ProcedureCode: "PROC-023", Department: "Radiology", Category: "Imaging", Duration: "20 mins", Description: "Ultrasound of pelvic organs", PreparationInstructions: "Full bladder required"},
	{Name: "X-Ray Chest PA View", ProcedureCode: "PROC-024", Department: "Radiology", Category: "Imaging", Duration: "10 mins", Description: "Plain radiograph of the chest", PreparationInstructions: "Remove metal objects"},
	{Name: "X-Ray Knee AP/Lateral", ProcedureCode: "PROC-025", Department: "Radiology", Category: "Imaging", Duration: "10 mins", Description: "Plain radiograph of the knee joint", PreparationInstructions: "Remove metal objects"},
	{Name: "CT Scan Brain", ProcedureCode: "PROC-026", Department: "Radiology", Category: "Imaging", Duration: "15 mins", Description: "Non-contrast computed tomography of the brain", PreparationInstructions: "Remove metal objects"},
	{Name: "MRI Lumbar Spine", ProcedureCode: "PROC-027", Department: "Radiology", Category: "Imaging", Duration: "30 mins", Description: "Magnetic resonance imaging of the lumbar spine", PreparationInstructions: "Declare implants and pacemakers"},
	{Name: "Mammography", ProcedureCode: "PROC-028", Department: "Radiology", Category: "Imaging", Duration: "20 mins", Description: "Low-dose X-ray screening of the breast", PreparationInstructions: "Avoid deodorant on the day of test"},
	{Name: "Plaster Cast Application", ProcedureCode: "PROC-029", Department: "Orthopaedics", Category: "Minor Procedure", Duration: "30 mins", Description: "Immobilisation of a fracture with plaster cast"},
	{Name: "Joint Aspiration", ProcedureCode: "PROC-030", Department: "Orthopaedics", Category: "Minor Procedure", Duration: "20 mins", Description: "Needle aspiration of joint fluid"},
	{Name: "Intra-articular Steroid Injection", ProcedureCode: "PROC-031", Department: "Orthopaedics", Category: "Therapeutic", Duration: "20 mins", Description: "Steroid injection into a joint space"},
	{Name: "Physiotherapy Session", ProcedureCode: "PROC-032", Department: "Physiotherapy", Category: "Rehabilitation", Duration: "45 mins", Description: "Supervised exercise and manual therapy", PreparationInstructions: "Wear loose clothing"},
	{Name: "Pap Smear", ProcedureCode: "PROC-033", Department: "Obstetrics & Gynaecology", Category: "Screening", Duration: "15 mins", Description: "Cervical cytology screening", PreparationInstructions: "Avoid intercourse 48 hours before"},
	{Name: "Antenatal Check-up", ProcedureCode: "PROC-034", Department: "Obstetrics & Gynaecology", Category: "Consultation", Duration: "20 mins", Description: "Routine pregnancy examination"},
	{Name: "IUD Insertion", ProcedureCode: "PROC-035", Department: "Obstetrics & Gynaecology", Category: "Minor Procedure", Duration: "20 mins", Description: "Insertion of an intrauterine contraceptive device"},
	{Name: "Normal Delivery", ProcedureCode: "PROC-036", Department: "Obstetrics & Gynaecology", Category: "Major Procedure", Duration: "Variable", Description: "Vaginal delivery with monitoring"},
	{Name: "Caesarean Section", ProcedureCode: "PROC-037", Department: "Obstetrics & Gynaecology", Category: "Major Surgery", Duration: "60 mins", Description: "Surgical delivery of the baby", PreparationInstructions: "Fast for 8 hours; pre-anaesthetic check required"},
	{Name: "Newborn Vaccination", ProcedureCode: "PROC-038", Department: "Paediatrics", Category: "Preventive", Duration: "15 mins", Description: "Scheduled immunisation for infants", PreparationInstructions: "Bring vaccination card"},
	{Name: "Ear Wax Removal", ProcedureCode: "PROC-039", Department: "ENT", Category: "Minor Procedure", Duration: "15 mins", Description: "Removal of impacted cerumen", PreparationInstructions: "Use wax softening drops for 3 days before"},
	{Name: "Nasal Endoscopy", ProcedureCode: "PROC-040", Department: "ENT", Category: "Diagnostic", Duration: "15 mins", Description: "Endoscopic examination of nasal passages"},
	{Name: "Audiometry", ProcedureCode: "PROC-041", Department: "ENT", Category: "Diagnostic", Duration: "30 mins", Description: "Pure tone hearing assessment"},
	{Name: "Tonsillectomy", ProcedureCode: "PROC-042", Department: "ENT", Category: "Major Surgery", Duration: "45 mins", Description: "Surgical removal of the tonsils", PreparationInstructions: "Fast for 8 hours"},
	{Name: "Eye Refraction Test", ProcedureCode: "PROC-043", Department: "Ophthalmology", Category: "Diagnostic", Duration: "20 mins", Description: "Assessment of refractive error"},
	{Name: "Cataract Surgery (Phaco)", ProcedureCode: "PROC-044", Department: "Ophthalmology", Category: "Day Care Surgery", Duration: "30 mins", Description: "Phacoemulsification with lens implant", PreparationInstructions: "Stop blood thinners if advised; bring reports"},
	{Name: "Tooth Extraction", ProcedureCode: "PROC-045", Department: "Dental", Category: "Minor Procedure", Duration: "30 mins", Description: "Extraction of a tooth under local anaesthesia", PreparationInstructions: "Eat a light meal before"},
	{Name: "Root Canal Treatment", ProcedureCode: "PROC-046", Department: "Dental", Category: "Therapeutic", Duration: "60 mins", Description: "Endodontic treatment of an infected tooth"},
	{Name: "Scaling and Polishing", ProcedureCode: "PROC-047", Department: "Dental", Category: "Preventive", Duration: "30 mins", Description: "Removal of plaque and calculus"},
	{Name: "Skin Biopsy", ProcedureCode: "PROC-048", Department: "Dermatology", Category: "Diagnostic", Duration: "20 mins", Description: "Punch biopsy of a skin lesion"},
	{Name: "Chemical Peel", ProcedureCode: "PROC-049", Department: "Dermatology", Category: "Cosmetic", Duration: "30 mins", Description: "Superficial chemical peel for pigmentation", PreparationInstructions: "Avoid sun exposure for 1 week before"},
	{Name: "Haemodialysis Session", ProcedureCode: "PROC-050", Department: "Nephrology", Category: "Therapeutic", Duration: "4 hours", Description: "Extracorporeal removal of waste and fluid", PreparationInstructions: "Do not take antihypertensives before session if advised"},
}
