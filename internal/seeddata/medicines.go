package seeddata

import "github.com/medora/tenant-seeder/internal/domain/entities"

var medicines = []entities.MedicineCatalogEntry{
	{Name: "Paracetamol 500mg", MedicineCode: "MED-001", Form: "Tablet", Strength: "500mg", DefaultFrequency: "Three times a day", Duration: "5 days", Route: "Oral"},
	{Name: "Paracetamol 650mg", MedicineCode: "MED-002", Form: "Tablet", Strength: "650mg", DefaultFrequency: "Three times a day", Duration: "5 days", Route: "Oral"},
	{Name: "Ibuprofen 400mg", MedicineCode: "MED-003", Form: "Tablet", Strength: "400mg", DefaultFrequency: "Twice a day", Duration: "5 days", Route: "Oral"},
	{Name: "Diclofenac 50mg", MedicineCode: "MED-004", Form: "Tablet", Strength: "50mg", DefaultFrequency: "Twice a day", Duration: "5 days", Route: "Oral"},
	{Name: "Aceclofenac 100mg", MedicineCode: "MED-005", Form: "Tablet", Strength: "100mg", DefaultFrequency: "Twice a day", Duration: "5 days", Route: "Oral"},
	{Name: "Tramadol 50mg", MedicineCode: "MED-006", Form: "Capsule", Strength: "50mg", DefaultFrequency: "Twice a day", Duration: "3 days", Route: "Oral"},
	{Name: "Amoxicillin 500mg", MedicineCode: "MED-007", Form: "Capsule", Strength: "500mg", DefaultFrequency: "Three times a day", Duration: "7 days", Route: "Oral"},
	{Name: "Amoxicillin Clavulanate 625mg", MedicineCode: "MED-008", Form: "Tablet", Strength: "625mg", DefaultFrequency: "Twice a day", Duration: "5 days", Route: "Oral"},
	{Name: "Azithromycin 500mg", MedicineCode: "MED-009", Form: "Tablet", Strength: "500mg", DefaultFrequency: "Once a day", Duration: "3 days", Route: "Oral"},
	{Name: "Ciprofloxacin 500mg", MedicineCode: "MED-010", Form: "Tablet", Strength: "500mg", DefaultFrequency: "Twice a day", Duration: "5 days", Route: "Oral"},
	{Name: "Levofloxacin 500mg", MedicineCode: "MED-011", Form: "Tablet", Strength: "500mg", DefaultFrequency: "Once a day", Duration: "5 days", Route: "Oral"},
	{Name: "Cefixime 200mg", MedicineCode: "MED-012", Form: "Tablet", Strength: "200mg", DefaultFrequency: "Twice a day", Duration: "7 days", Route: "Oral"},
	{Name: "Cefuroxime 500mg", MedicineCode: "MED-013", Form: "Tablet", Strength: "500mg", DefaultFrequency: "Twice a day", Duration: "7 days", Route: "Oral"},
	{Name: "Doxycycline 100mg", MedicineCode: "MED-014", Form: "Capsule", Strength: "100mg", DefaultFrequency: "Twice a day", Duration: "7 days", Route: "Oral"},
	{Name: "Metronidazole 400mg", MedicineCode: "MED-015", Form: "Tablet", Strength: "400mg", DefaultFrequency: "Three times a day", Duration: "5 days", Route: "Oral"},
	{Name: "Nitrofurantoin 100mg", MedicineCode: "MED-016", Form: "Capsule", Strength: "100mg", DefaultFrequency: "Twice a day", Duration: "5 days", Route: "Oral"},
	{Name: "Ceftriaxone 1g", MedicineCode: "MED-017", Form: "Injection", Strength: "1g", DefaultFrequency: "Once a day", Duration: "5 days", Route: "Intravenous"},
	{Name: "Fluconazole 150mg", MedicineCode: "MED-018", Form: "Tablet", Strength: "150mg", DefaultFrequency: "Once a week", Duration: "2 weeks", Route: "Oral"},
	{Name: "Acyclovir 400mg", MedicineCode: "MED-019", Form: "Tablet", Strength: "400mg", DefaultFrequency: "Five times a day", Duration: "7 days", Route: "Oral"},
	{Name: "Albendazole 400mg", MedicineCode: "MED-020", Form: "Tablet", Strength: "400mg", DefaultFrequency: "Single dose", Duration: "1 day", Route: "Oral"},
	{Name: "Metformin 500mg", MedicineCode: "MED-021", Form: "Tablet", Strength: "500mg", DefaultFrequency: "Twice a day", Duration: "30 days", Route: "Oral"},
	{Name: "Metformin 1000mg", MedicineCode: "MED-022", Form: "Tablet", Strength: "1000mg", DefaultFrequency: "Twice a day", Duration: "30 days", Route: "Oral"},
	{Name: "Glimepiride 1mg", MedicineCode: "MED-023", Form: "Tablet", Strength: "1mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Glimepiride 2mg", MedicineCode: "MED-024", Form: "Tablet", Strength: "2mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Sitagliptin 100mg", MedicineCode: "MED-025", Form: "Tablet", Strength: "100mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Vildagliptin 50mg", MedicineCode: "MED-026", Form: "Tablet", Strength: "50mg", DefaultFrequency: "Twice a day", Duration: "30 days", Route: "Oral"},
	{Name: "Insulin Glargine 100IU/ml", MedicineCode: "MED-027", Form: "Injection", Strength: "100IU/ml", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Subcutaneous"},
	{Name: "Insulin Regular 40IU/ml", MedicineCode: "MED-028", Form: "Injection", Strength: "40IU/ml", DefaultFrequency: "Before meals", Duration: "30 days", Route: "Subcutaneous"},
	{Name: "Amlodipine 5mg", MedicineCode: "MED-029", Form: "Tablet", Strength: "5mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Amlodipine 10mg", MedicineCode: "MED-030", Form: "Tablet", Strength: "10mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Telmisartan 40mg", MedicineCode: "MED-031", Form: "Tablet", Strength: "40mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Losartan 50mg", MedicineCode: "MED-032", Form: "Tablet", Strength: "50mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Enalapril 5mg", MedicineCode: "MED-033", Form: "Tablet", Strength: "5mg", DefaultFrequency: "Twice a day", Duration: "30 days", Route: "Oral"},
	{Name: "Ramipril 5mg", MedicineCode: "MED-034", Form: "Tablet", Strength: "5mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Metoprolol 25mg", MedicineCode: "MED-035", Form: "Tablet", Strength: "25mg", DefaultFrequency: "Twice a day", Duration: "30 days", Route: "Oral"},
	{Name: "Atenolol 50mg", MedicineCode: "MED-036", Form: "Tablet", Strength: "50mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Bisoprolol 5mg", MedicineCode: "MED-037", Form: "Tablet", Strength: "5mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Hydrochlorothiazide 12.5mg", MedicineCode: "MED-038", Form: "Tablet", Strength: "12.5mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Furosemide 40mg", MedicineCode: "MED-039", Form: "Tablet", Strength: "40mg", DefaultFrequency: "Once a day", Duration: "14 days", Route: "Oral"},
	{Name: "Spironolactone 25mg", MedicineCode: "MED-040", Form: "Tablet", Strength: "25mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Atorvastatin 10mg", MedicineCode: "MED-041", Form: "Tablet", Strength: "10mg", DefaultFrequency: "Once a day at night", Duration: "30 days", Route: "Oral"},
	{Name: "Atorvastatin 20mg", MedicineCode: "MED-042", Form: "Tablet", Strength: "20mg", DefaultFrequency: "Once a day at night", Duration: "30 days", Route: "Oral"},
	{Name: "Rosuvastatin 10mg", MedicineCode: "MED-043", Form: "Tablet", Strength: "10mg", DefaultFrequency: "Once a day at night", Duration: "30 days", Route: "Oral"},
	{Name: "Aspirin 75mg", MedicineCode: "MED-044", Form: "Tablet", Strength: "75mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Clopidogrel 75mg", MedicineCode: "MED-045", Form: "Tablet", Strength: "75mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Warfarin 5mg", MedicineCode: "MED-046", Form: "Tablet", Strength: "5mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Isosorbide Mononitrate 20mg", MedicineCode: "MED-047", Form: "Tablet", Strength: "20mg", DefaultFrequency: "Twice a day", Duration: "30 days", Route: "Oral"},
	{Name: "Digoxin 0.25mg", MedicineCode: "MED-048", Form: "Tablet", Strength: "0.25mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Omeprazole 20mg", MedicineCode: "MED-049", Form: "Capsule", Strength: "20mg", DefaultFrequency: "Once a day before breakfast", Duration: "14 days", Route: "Oral"},
	{Name: "Pantoprazole 40mg", MedicineCode: "MED-050", Form: "Tablet", Strength: "40mg", DefaultFrequency: "Once a day before breakfast", Duration: "14 days", Route: "Oral"},
	{Name: "Rabeprazole 20mg", MedicineCode: "MED-051", Form: "Tablet", Strength: "20mg", DefaultFrequency: "Once a day before breakfast", Duration: "14 days", Route: "Oral"},
	{Name: "Ranitidine 150mg", MedicineCode: "MED-052", Form: "Tablet", Strength: "150mg", DefaultFrequency: "Twice a day", Duration: "14 days", Route: "Oral"},
	{Name: "Domperidone 10mg", MedicineCode: "MED-053", Form: "Tablet", Strength: "10mg", DefaultFrequency: "Three times a day", Duration: "5 days", Route: "Oral"},
	{Name: "Ondansetron 4mg", MedicineCode: "MED-054", Form: "Tablet", Strength: "4mg", DefaultFrequency: "Twice a day", Duration: "3 days", Route: "Oral"},
	{Name: "Loperamide 2mg", MedicineCode: "MED-055", Form: "Capsule", Strength: "2mg", DefaultFrequency: "After each loose stool", Duration: "2 days", Route: "Oral"},
	{Name: "Lactulose Syrup", MedicineCode: "MED-056", Form: "Syrup", Strength: "10g/15ml", DefaultFrequency: "Once a day at night", Duration: "7 days", Route: "Oral"},
	{Name: "Oral Rehydration Salts", MedicineCode: "MED-057", Form: "Powder", Strength: "21g sachet", DefaultFrequency: "After each loose stool", Duration: "3 days", Route: "Oral"},
	{Name: "Sucralfate Suspension", MedicineCode: "MED-058", Form: "Syrup", Strength: "1g/10ml", DefaultFrequency: "Three times a day", Duration: "14 days", Route: "Oral"},
	{Name: "Cetirizine 10mg", MedicineCode: "MED-059", Form: "Tablet", Strength: "10mg", DefaultFrequency: "Once a day", Duration: "5 days", Route: "Oral"},
	{Name: "Levocetirizine 5mg", MedicineCode: "MED-060", Form: "Tablet", Strength: "5mg", DefaultFrequency: "Once a day", Duration: "5 days", Route: "Oral"},
	{Name: "Fexofenadine 120mg", MedicineCode: "MED-061", Form: "Tablet", Strength: "120mg", DefaultFrequency: "Once a day", Duration: "7 days", Route: "Oral"},
	{Name: "Montelukast 10mg", MedicineCode: "MED-062", Form: "Tablet", Strength: "10mg", DefaultFrequency: "Once a day at night", Duration: "30 days", Route: "Oral"},
	{Name: "Chlorpheniramine 4mg", MedicineCode: "MED-063", Form: "Tablet", Strength: "4mg", DefaultFrequency: "Three times a day", Duration: "5 days", Route: "Oral"},
	{Name: "Salbutamol Inhaler 100mcg", MedicineCode: "MED-064", Form: "Inhaler", Strength: "100mcg", DefaultFrequency: "As needed", Duration: "30 days", Route: "Inhalation"},
	{Name: "Budesonide Inhaler 200mcg", MedicineCode: "MED-065", Form: "Inhaler", Strength: "200mcg", DefaultFrequency: "Twice a day", Duration: "30 days", Route: "Inhalation"},
	{Name: "Ipratropium Nebulisation", MedicineCode: "MED-066", Form: "Nebuliser", Strength: "500mcg", DefaultFrequency: "Three times a day", Duration: "5 days", Route: "Inhalation"},
	{Name: "Dextromethorphan Syrup", MedicineCode: "MED-067", Form: "Syrup", Strength: "10mg/5ml", DefaultFrequency: "Three times a day", Duration: "5 days", Route: "Oral"},
	{Name: "Ambroxol Syrup", MedicineCode: "MED-068", Form: "Syrup", Strength: "30mg/5ml", DefaultFrequency: "Three times a day", Duration: "5 days", Route: "Oral"},
	{Name: "Prednisolone 10mg", MedicineCode: "MED-069", Form: "Tablet", Strength: "10mg", DefaultFrequency: "Once a day", Duration: "5 days", Route: "Oral"},
	{Name: "Methylprednisolone 4mg", MedicineCode: "MED-070", Form: "Tablet", Strength: "4mg", DefaultFrequency: "Twice a day", Duration: "5 days", Route: "Oral"},
	{Name: "Dexamethasone 4mg", MedicineCode: "MED-071", Form: "Injection", Strength: "4mg/ml", DefaultFrequency: "Once a day", Duration: "3 days", Route: "Intravenous"},
	{Name: "Hydrocortisone Cream 1%", MedicineCode: "MED-072", Form: "Cream", Strength: "1%", DefaultFrequency: "Twice a day", Duration: "7 days", Route: "Topical"},
	{Name: "Clotrimazole Cream 1%", MedicineCode: "MED-073", Form: "Cream", Strength: "1%", DefaultFrequency: "Twice a day", Duration: "14 days", Route: "Topical"},
	{Name: "Mupirocin Ointment 2%", MedicineCode: "MED-074", Form: "Ointment", Strength: "2%", DefaultFrequency: "Three times a day", Duration: "7 days", Route: "Topical"},
	{Name: "Betamethasone Cream 0.1%", MedicineCode: "MED-075", Form: "Cream", Strength: "0.1%", DefaultFrequency: "Twice a day", Duration: "7 days", Route: "Topical"},
	{Name: "Permethrin Cream 5%", MedicineCode: "MED-076", Form: "Cream", Strength: "5%", DefaultFrequency: "Single application", Duration: "1 day", Route: "Topical"},
	{Name: "Levothyroxine 50mcg", MedicineCode: "MED-077", Form: "Tablet", Strength: "50mcg", DefaultFrequency: "Once a day before breakfast", Duration: "30 days", Route: "Oral"},
	{Name: "Levothyroxine 100mcg", MedicineCode: "MED-078", Form: "Tablet", Strength: "100mcg", DefaultFrequency: "Once a day before breakfast", Duration: "30 days", Route: "Oral"},
	{Name: "Carbimazole 10mg", MedicineCode: "MED-079", Form: "Tablet", Strength: "10mg", DefaultFrequency: "Twice a day", Duration: "30 days", Route: "Oral"},
	{Name: "Calcium Carbonate with Vitamin D3", MedicineCode: "MED-080", Form: "Tablet", Strength: "500mg/250IU", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Vitamin D3 60000IU", MedicineCode: "MED-081", Form: "Capsule", Strength: "60000IU", DefaultFrequency: "Once a week", Duration: "8 weeks", Route: "Oral"},
	{Name: "Ferrous Sulphate 200mg", MedicineCode: "MED-082", Form: "Tablet", Strength: "200mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Folic Acid 5mg", MedicineCode: "MED-083", Form: "Tablet", Strength: "5mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Vitamin B12 1500mcg", MedicineCode: "MED-084", Form: "Tablet", Strength: "1500mcg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Multivitamin", MedicineCode: "MED-085", Form: "Capsule", Strength: "Standard", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Alprazolam 0.25mg", MedicineCode: "MED-086", Form: "Tablet", Strength: "0.25mg", DefaultFrequency: "Once a day at night", Duration: "14 days", Route: "Oral"},
	{Name: "Escitalopram 10mg", MedicineCode: "MED-087", Form: "Tablet", Strength: "10mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Sertraline 50mg", MedicineCode: "MED-088", Form: "Tablet", Strength: "50mg", DefaultFrequency: "Once a day", Duration: "30 days", Route: "Oral"},
	{Name: "Amitriptyline 10mg", MedicineCode: "MED-089", Form: "Tablet", Strength: "10mg", DefaultFrequency: "Once a day at night", Duration: "30 days", Route: "Oral"},
	{Name: "Gabapentin 300mg", MedicineCode: "MED-090", Form: "Capsule", Strength: "300mg", DefaultFrequency: "Three times a day", Duration: "30 days", Route: "Oral"},
	{Name: "Pregabalin 75mg", MedicineCode: "MED-091", Form: "Capsule", Strength: "75mg", DefaultFrequency: "Twice a day", Duration: "30 days", Route: "Oral"},
	{Name: "Levetiracetam 500mg", MedicineCode: "MED-092", Form: "Tablet", Strength: "500mg", DefaultFrequency: "Twice a day", Duration: "30 days", Route: "Oral"},
	{Name: "Sodium Valproate 500mg", MedicineCode: "MED-093", Form: "Tablet", Strength: "500mg", DefaultFrequency: "Twice a day", Duration: "30 days", Route: "Oral"},
	{Name: "Tamsulosin 0.4mg", MedicineCode: "MED-094", Form: "Capsule", Strength: "0.4mg", DefaultFrequency: "Once a day at night", Duration: "30 days", Route: "Oral"},
	{Name: "Sildenafil 50mg", MedicineCode: "MED-095", Form: "Tablet", Strength: "50mg", DefaultFrequency: "As needed", Duration: "30 days", Route: "Oral"},
	{Name: "Diclofenac Gel 1%", MedicineCode: "MED-096", Form: "Gel", Strength: "1%", DefaultFrequency: "Three times a day", Duration: "7 days", Route: "Topical"},
	{Name: "Ciprofloxacin Eye Drops 0.3%", MedicineCode: "MED-097", Form: "Drops", Strength: "0.3%", DefaultFrequency: "Four times a day", Duration: "7 days", Route: "Ophthalmic"},
	{Name: "Carboxymethylcellulose Eye Drops 0.5%", MedicineCode: "MED-098", Form: "Drops", Strength: "0.5%", DefaultFrequency: "Four times a day", Duration: "30 days", Route: "Ophthalmic"},
	{Name: "Ofloxacin Ear Drops 0.3%", MedicineCode: "MED-099", Form: "Drops", Strength: "0.3%", DefaultFrequency: "Twice a day", Duration: "7 days", Route: "Otic"},
	{Name: "Xylometazoline Nasal Spray 0.1%", MedicineCode: "MED-100", Form: "Spray", Strength: "0.1%", DefaultFrequency: "Twice a day", Duration: "5 days", Route: "Nasal"},
}
