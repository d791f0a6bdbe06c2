package config

// defaultNewsFeeds are the RSS sources polled by the news pipeline.
var defaultNewsFeeds = []string{
	"https://www.sciencedaily.com/rss/mind_brain/als.xml",
	"https://medicalxpress.com/rss/tags/amyotrophic+lateral+sclerosis/",
	"https://www.news-medical.net/tag/feed/Amyotrophic-Lateral-Sclerosis-ALS.aspx",
	"https://www.sciencedaily.com/rss/mind_brain/dementia.xml", // FTD coverage
	"https://medicalxpress.com/rss/tags/frontotemporal+dementia/",
}

// defaultIncludeConditions is the curated inclusion vocabulary used both
// as the registry search query and as the fuzzy-match reference set.
var defaultIncludeConditions = []string{
	"ALS", "amyotrophic lateral sclerosis",
	"Amyotrophic Lateral Sclerosis", "Lou Gehrig's disease", "Lou Gehrigs Disease",
	"Motor Neuron Disease", "motor neuron disease", "MND", "mnd", "frontal lobe dementia",
	"Frontal Lobe Dementia", "Frontotemporal dementia", "Frontotemporal Dementia",
	"frontotemporal dementia", "FTD", "Behavioral variant Frontotemporal Dementia (bvFTD)",
	"bvFTD", "Frontotemporal Lobar Degeneration (FTLD)", "FTLD", "Frontotemporal Lobar Degeneration",
}

// defaultExcludeConditions removes registry false positives that would
// otherwise fuzzy-match the inclusion vocabulary by accident. Entries are
// matched case-insensitively and exactly; registries misspell condition
// names, so misspellings observed upstream are listed too.
var defaultExcludeConditions = []string{
	// Spinal Muscular Atrophy
	"Spinal Muscular Atrophy", "spinal muscular atrophy", "Spinal Muscular Atrophy (SMA)",
	"SMA", "Type * Spinal Muscular Atrophy", "Type * SMA",
	"Infantile-onset Spinal Muscular Atrophy", "Infantile-onset SMA",
	"Muscular Atrophy, Spinal, Type *", "Muscular Atrophy, Spinal",
	"Type 2 Spinal Muscular Atrophy", "Spinal Muscular Atrophy 1", "Spinal Muscular Atrophy Type II",
	"Spinal Muscular Atrophy Type III", "SMA II", "SMA - Spinal Muscular Atrophy", "Spinal Muscular Atrophy Type I",
	"Chest Deformities", "Spinal Orthosis", "Pulmonary Rehabilitation", "Spinal Muscular Atrophy Type 3",
	"Infantile Spinal Muscular Atrophy, Type I [Werdnig- Hoffman]", "Infantile Spinal Muscular Atrophy",
	"Natural History of Type 1 Spinal Muscular Atrophy (SMA)", "Spinal and Bulbar Muscular Atrophy",
	// Primary Progressive Aphasia
	"Aphasia, Primary Progressive", "Primary Progressive Aphasia", "primary progressive aphasia",
	"PPA", "Logopenic Progressive Aphasia", "logopenic progressive aphasia",
	"Nonfluent Variant Primary Progressive Aphasia (nfvPPA)",
	"Logopenic Variant Primary Progressive Aphasia", "Non-fluent Variant Primary Progressive Aphasia",
	"Semantic Variant Primary Progressive Aphasia",
	// Corticobasal Degeneration and Progressive Supranuclear Palsy
	"Corticobasal Degeneration (CBD)", "Corticobasal Syndrome (CBS)", "Cortical-basal Ganglionic Degeneration (CBGD)",
	"Progressive Supranuclear Palsy (PSP)",
	"Oligosymptomatic/Variant Progressive Supranuclear Palsy (o/vPSP)",
	"CBD", "CBS", "CBGD", "PSP", "nfvPPA", "oPSP", "vPSP", "o/vPSP",
	"Corticobasal Degeneration", "Corticobasal Syndrome", "Cortocal-basal Ganglionic Degeneration",
	"Progressive Supranuclear Palsy", "Oligosymptomatic Progressive Supranuclear Palsy",
	// Niemann-Pick Disease
	"Niemann-Pick Disease", "Neimann-Pick Disease", "Niemann-Pick Disease, Type C", "Niemann-Pick Disease, Type C*",
	"Niemann-Pick Disease, Type C1", "Niemann-Pick Diseases", "Niemann-Pick Disease Type C*", "Pick Disease of the Brain",
	"Niemann-Pick Type C Disease",
	// Other neurological and systemic conditions seen in registry results
	"Chronic Lymphocytic Leukemia", "Hurler Syndrome (MPS I)", "Hurler-Scheie Syndrome", "Hunter Syndrome (MPS II)",
	"Sanfilippo Syndrome (MPS III)", "Krabbe Disease (Globoid Leukodystrophy)", "Metachromatic Leukodystrophy",
	"Adrenoleukodystrophy (ALD and AMN)", "Sandhoff Disease", "Tay Sachs Disease", "Pelizaeus Merzbacher (PMD)",
	"Alpha-mannosidosis", "Juvenile Neuronal Ceroid Lipofuscinosis", "Smith-Lemli-Opitz Syndrome",
	"Creatine Transporter Deficiency", "Mucopolysaccharidosis I", "Mucopolysaccharidosis VI", "Adrenoleukodystrophy",
	"Wolman Disease", "Krabbe's Disease", "Gaucher's Disease", "Fucosidosis",
	"Batten Disease", "Severe Aplastic Anemia", "Diamond-Blackfan Anemia", "Amegakaryocytic Thrombocytopenia",
	"Myelodysplastic Syndrome", "Acute Myelogenous Leukemia", "Acute Lymphocytic Leukemia", "Lysosomal Acid Lipase Deficiency",
	"Stroke", "Spasticity", "Acid Sphingomyelinase Deficiency", "Gaucher Disease", "ASMD", "Splenomegaly",
	"Colorectal Neoplasms", "Trifluridine and Tipiracil", "Circulating Tumor DNA", "Satisfaction", "Nonalcoholic Steatohepatitis",
	"Prostate Cancer", "Renal Cancer", "Brain Cancer", "Feasibility of Neonatal Screening for Spinal Amyotrophy", "Diplegic Cerebral Palsy",
	"Rare Disorders", "Undiagnosed Disorders", "Disorders of Unknown Prevalence", "Cornelia De Lange Syndrome",
	"Prenatal Benign Hypophosphatasia", "Perinatal Lethal Hypophosphatasia", "Odontohypophosphatasia", "Adult Hypophosphatasia",
	"Childhood-onset Hypophosphatasia", "Infantile Hypophosphatasia", "Hypophosphatasia", "Kabuki Syndrome",
	"Bohring-Opitz Syndrome", "Narcolepsy Without Cataplexy", "Narcolepsy-cataplexy", "Hypersomnolence Disorder",
	"Idiopathic Hypersomnia Without Long Sleep Time", "Idiopathic Hypersomnia With Long Sleep Time", "Idiopathic Hypersomnia",
	"Kleine-Levin Syndrome", "Kawasaki Disease", "Leiomyosarcoma", "Leiomyosarcoma of the Corpus Uteri",
	"Leiomyosarcoma of the Cervix Uteri", "Leiomyosarcoma of Small Intestine", "Acquired Myasthenia Gravis",
	"Addison Disease", "Hyperacusis (Hyperacousis)", "Juvenile Myasthenia Gravis", "Transient Neonatal Myasthenia Gravis",
	"Williams Syndrome", "Lyme Disease", "Myasthenia Gravis", "Marinesco Sjogren Syndrome(Marinesco-Sjogren Syndrome)",
	"Isolated Klippel-Feil Syndrome", "Frasier Syndrome", "Denys-Drash Syndrome", "Beckwith-Wiedemann Syndrome",
	"Emanuel Syndrome", "Isolated Aniridia", "Axenfeld-Rieger Syndrome", "Aniridia-intellectual Disability Syndrome",
	"Aniridia - Renal Agenesis - Psychomotor Retardation", "Aniridia - Ptosis - Intellectual Disability - Familial Obesity",
	"Aniridia - Cerebellar Ataxia - Intellectual Disability", "Aniridia - Absent Patella", "Aniridia",
	"Peters Anomaly - Cataract", "Peters Anomaly", "Potocki-Shaffer Syndrome",
	"Silver-Russell Syndrome Due to Maternal Uniparental Disomy of Chromosome 11",
	"Silver-Russell Syndrome Due to Imprinting Defect of 11p15", "Silver-Russell Syndrome Due to 11p15 Microduplication",
	"Syndromic Aniridia", "WAGR Syndrome", "Wolf-Hirschhorn Syndrome", "4p16.3 Microduplication Syndrome",
	"4p Deletion Syndrome, Non-Wolf-Hirschhorn Syndrome", "Autosomal Recessive Stickler Syndrome",
	"Stickler Syndrome Type *", "Stickler Syndrome", "Mucolipidosis Type 4", "X-linked Spinocerebellar Ataxia Type *",
	"X-linked Intellectual Disability - Ataxia - Apraxia", "Vitamin B12 Deficiency Ataxia", "Toxic Exposure Ataxia",
	"Unclassified Autosomal Dominant Spinocerebellar Ataxia", "Thyroid Antibody Ataxia", "Sporadic Adult-onset Ataxia of Unknown Etiology",
	"Spinocerebellar Ataxia With Oculomotor Anomaly", "Spinocerebellar Ataxia With Epilepsy", "Spinocerebellar Ataxia With Axonal Neuropathy Type *",
	"Spinocerebellar Ataxia Type *", "Spinocerebellar Ataxia - Unknown", "Spinocerebellar Ataxia - Dysmorphism",
	"Non Progressive Epilepsy and/or Ataxia With Myoclonus as a Major Feature", "Spasticity-ataxia-gait Anomalies Syndrome",
	"Spastic Ataxia With Congenital Miosis", "Spastic Ataxia - Corneal Dystrophy", "Spastic Ataxia", "Rare Hereditary Ataxia",
	"Rare Ataxia", "Recessive Mitochondrial Ataxia Syndrome", "Progressive Epilepsy and/or Ataxia With Myoclonus as a Major Feature",
	"Posterior Column Ataxia - Retinitis Pigmentosa", "Post-Stroke Ataxia", "Post-Head Injury Ataxia", "Post Vaccination Ataxia",
	"Polyneuropathy - Hearing Loss - Ataxia - Retinitis Pigmentosa - Cataract", "Muscular Atrophy - Ataxia - Retinitis Pigmentosa - Diabetes Mellitus",
	"Non-hereditary Degenerative Ataxia", "Paroxysmal Dystonic Choreathetosis With Episodic Ataxia and Spasticity",
	"Olivopontocerebellar Atrophy - Deafness", "NARP Syndrome", "Myoclonus - Cerebellar Ataxia - Deafness",
	"Multiple System Atrophy, Parkinsonian Type", "Multiple System Atrophy, Cerebellar Type", "Multiple System Atrophy",
	"Maternally-inherited Leigh Syndrome", "Machado-Joseph Disease Type *", "Leigh Syndrome", "Late-onset Ataxia With Dementia",
	"Infection or Post Infection Ataxia", "GAD Ataxia", "Hereditary Episodic Ataxia", "Gliadin/Gluten Ataxia",
	"Friedreich Ataxia", "Fragile X-associated Tremor/Ataxia Syndrome", "Familial Paroxysmal Ataxia",
	"Exposure to Medications Ataxia", "Episodic Ataxia With Slurred Speech", "Episodic Ataxia Unknown Type",
	"Epilepsy and/or Ataxia With Myoclonus as Major Feature", "Early-onset Spastic Ataxia-neuropathy Syndrome",
	"Early-onset Progressive Neurodegeneration - Blindness - Ataxia - Spasticity",
	"Early-onset Cerebellar Ataxia With Retained Tendon Reflexes", "Early-onset Ataxia With Dementia",
	"Childhood-onset Autosomal Recessive Slowly Progressive Spinocerebellar Ataxia", "Dilated Cardiomyopathy With Ataxia",
	"Cataract - Ataxia - Deafness", "Cerebellar Ataxia, Cayman Type", "Cerebellar Ataxia With Peripheral Neuropathy",
	"Cerebellar Ataxia - Hypogonadism", "Cerebellar Ataxia - Ectodermal Dysplasia",
	"Cerebellar Ataxia - Areflexia - Pes Cavus - Optic Atrophy - Sensorineural Hearing Loss", "Brain Tumor Ataxia",
	"Brachydactyly - Nystagmus - Cerebellar Ataxia", "Benign Paroxysmal Tonic Upgaze of Childhood With Ataxia",
	"Autosomal Recessive Syndromic Cerebellar Ataxia", "Autosomal Recessive Spastic Ataxia With Leukoencephalopathy",
	"Autosomal Recessive Spastic Ataxia of Charlevoix-Saguenay",
	"Autosomal Recessive Spastic Ataxia - Optic Atrophy - Dysarthria", "Autosomal Recessive Spastic Ataxia",
	"Autosomal Recessive Metabolic Cerebellar Ataxia",
	"Autosomal Dominant Spinocerebellar Ataxia Due to Repeat Expansions That do Not Encode Polyglutamine",
	"Autosomal Recessive Ataxia, Beauce Type", "Autosomal Recessive Ataxia Due to Ubiquinone Deficiency",
	"Autosomal Recessive Ataxia Due to PEX10 Deficiency",
	"Autosomal Recessive Degenerative and Progressive Cerebellar Ataxia",
	"Autosomal Recessive Congenital Cerebellar Ataxia Due to MGLUR1 Deficiency",
	"Autosomal Recessive Congenital Cerebellar Ataxia Due to GRID2 Deficiency",
	"Autosomal Recessive Congenital Cerebellar Ataxia",
	"Autosomal Recessive Cerebellar Ataxia-pyramidal Signs-nystagmus-oculomotor Apraxia Syndrome",
	"Autosomal Recessive Cerebellar Ataxia-epilepsy-intellectual Disability Syndrome Due to WWOX Deficiency",
	"Autosomal Recessive Cerebellar Ataxia-epilepsy-intellectual Disability Syndrome Due to TUD Deficiency",
	"Autosomal Recessive Cerebellar Ataxia-epilepsy-intellectual Disability Syndrome Due to KIAA0226 Deficiency",
	"Autosomal Recessive Cerebellar Ataxia-epilepsy-intellectual Disability Syndrome",
	"Autosomal Recessive Cerebellar Ataxia With Late-onset Spasticity", "Autosomal Recessive Cerebellar Ataxia Due to STUB1 Deficiency",
	"Autosomal Recessive Cerebellar Ataxia Due to a DNA Repair Defect",
	"Autosomal Recessive Cerebellar Ataxia - Saccadic Intrusion",
	"Autosomal Recessive Cerebellar Ataxia - Psychomotor Retardation",
	"Autosomal Recessive Cerebellar Ataxia - Blindness - Deafness", "Autosomal Recessive Cerebellar Ataxia",
	"Autosomal Dominant Spinocerebellar Ataxia Due to a Polyglutamine Anomaly",
	"Autosomal Dominant Spinocerebellar Ataxia Due to a Point Mutation",
	"Autosomal Dominant Spinocerebellar Ataxia Due to a Channelopathy",
	"Autosomal Dominant Spastic Ataxia Type *", "Autosomal Dominant Spastic Ataxia", "Autosomal Dominant Optic Atrophy",
	"Ataxia-telangiectasia Variant", "Ataxia-telangiectasia",
	"Autosomal Dominant Cerebellar Ataxia, Deafness and Narcolepsy", "Autosomal Dominant Cerebellar Ataxia Type *",
	"Ataxia-telangiectasia-like Disorder", "Ataxia With Vitamin E Deficiency", "Ataxia With Dementia",
	"Ataxia - Oculomotor Apraxia Type 1", "Ataxia - Other", "Ataxia - Genetic Diagnosis - Unknown", "Acquired Ataxia",
	"Adult-onset Autosomal Recessive Cerebellar Ataxia", "Alcohol Related Ataxia", "Multiple Endocrine Neoplasia",
	"Multiple Endocrine Neoplasia Type *", "Atypical Hemolytic Uremic Syndrome", "Atypical HUS", "Wiedemann-Steiner Syndrome",
	"Breast Implant-Associated Anaplastic Large Cell Lymphoma", "Autoimmune/Inflammatory Syndrome Induced by Adjuvants (ASIA)",
	"Hemophagocytic Lymphohistiocytosis", "Behcet's Disease", "Alagille Syndrome",
	"Inclusion Body Myopathy With Early-onset Paget Disease and Frontotemporal Dementia (IBMPFD)", "Lowe Syndrome", "Pitt Hopkins Syndrome",
	"1p36 Deletion Syndrome", "Jansen Type Metaphyseal Chondrodysplasia", "Cockayne Syndrome", "Chronic Recurrent Multifocal Osteomyelitis",
	"CRMO", "Malan Syndrome", "Hereditary Sensory and Autonomic Neuropathy Type *", "VCP Disease", "Hypnic Jerking", "Sleep Myoclonus",
	"Mollaret Meningitis", "Recurrent Viral Meningitis", "CRB1", "Leber Congenital Amaurosis", "Retinitis Pigmentosa",
	"Rare Retinal Disorder", "KCNMA1-Channelopathy", "Primary Biliary Cirrhosis", "ZMYND11", "Transient Global Amnesia",
	"Glycogen Storage Disease", "Alstrom Syndrome", "White Sutton Syndrome", "DNM1", "EIEE*", "Myhre Syndrome",
	"Recurrent Respiratory Papillomatosis", "Laryngeal Papillomatosis", "Tracheal Papillomatosis", "Refsum Disease",
	"Nicolaides Baraitser Syndrome", "Leukodystrophy", "Tango*", "Cauda Equina Syndrome", "Rare Gastrointestinal Disorders",
	"Achalasia-Addisonian Syndrome", "Achalasia Cardia", "Achalasia Icrocephaly Syndrome", "Anal Fistula",
	"Congenital Sucrase-Isomaltase Deficiency", "Eosinophilic Gastroenteritis", "Idiopathic Gastroparesis", "Hirschsprung Disease",
	"Rare Inflammatory Bowel Disease", "Intestinal Pseudo-Obstruction", "Scleroderma", "Short Bowel Syndrome", "Sacral Agenesis",
	"Sacral Agenesis Syndrome", "Caudal Regression", "Scheuermann Disease", "SMC1A Truncated Mutations (Causing Loss of Gene Function)",
	"Cystinosis", "Juvenile Nephropathic Cystinosis", "Nephropathic Cystinosis", "Kennedy Disease", "Spinal Bulbar Muscular Atrophy",
	"Warburg Micro Syndrome", "Mucolipidoses", "Mitochondrial Diseases", "Mitochondrial Aminoacyl-tRNA Synthetases",
	"Mt-aaRS Disorders", "Hypertrophic Olivary Degeneration", "Non-Ketotic Hyperglycinemia", "Fish Odor Syndrome", "Halitosis",
	"Isolated Congenital Asplenia", "Lambert Eaton (LEMS)", "Biliary Atresia", "STAG1 Gene Mutation", "Coffin Lowry Syndrome",
	"Borjeson-Forssman-Lehman Syndrome", "Blau Syndrome", "Arginase 1 Deficiency", "HSPB8 Myopathy", "Beta-Mannosidosis",
	"TBX4 Syndrome", "DHDDS Gene Mutations", "MAND-MBD5-Associated Neurodevelopmental Disorder", "Constitutional Mismatch Repair Deficiency (CMMRD)",
	"SPATA5 Disorder", "SPATA5L* Related Disorder", "Kennedy's Disease", "Sialorrhea", "Fibromyalgia", "Fertility Issues", "Asmd, Visceral Type",
	"Sphingomyelin Lipidosis", "Cholangiocarcinoma", "Stage III Gallbladder Cancer AJCC v7", "Stage IIIA Gallbladder Cancer AJCC v7",
	"Stage IIIB Gallbladder Cancer AJCC v7", "Stage IV Gallbladder Cancer AJCC v7", "Stage IVA Gallbladder Cancer AJCC v7",
	"Stage IVB Gallbladder Cancer AJCC v7", "Hemiplegic Cerebral Palsy", "Tetraplegia", "Psychiatric Adults Patients", "Alzheimer Disease", "Alzheimer's Disease",
	"Postpoliomyelitis", "Duchenne Muscular Dystrophy", "Inherited Metabolic Diseases", "Lysosomal Storage Disorders", "Peroxisomal Storage Diseases",
	"Inborn Errors of Metabolism", "Mucopolysaccharidosis", "Spinal Cord Injuries", "Death, Sudden, Cardiac", "Out-Of-Hospital Cardiac Arrest",
	"Ventricular Fibrillation", "Cardiopulmonary Arrest With Successful Resuscitation", "Insomnia", "Depression", "Distal Hereditary Motor Neuropathy, Type II",
	"Distal Hereditary Motor Neuropathy, Type V", "Distal Hereditary Motor Neuronopathy Type I", "Distal Hereditary Motor Neuronopathy Type VI",
	"Cerebral Palsy", "Hirayama Disease", "Osteoporosis", "Poliomyelitis", "Postpoliomyelitis Syndrome",
	"Children With Spastic Diplegia, Between the Ages of 2 to 10 Years", "Gross Motor Function Classification System (GMFCS) Level I,II and III",
	"Inclusion Body Myopathy With Early-onset Paget Disease and Frontotemporal Dementia", "Paget Disease of Bone",
	"Myopathy", "Pompe Disease (Late-onset)", "Inclusion Body Myositis, Sporadic", "Facioscapulohumeral Muscular Dystrophy 1",
	"Myotonic Dystrophy Type 1 (DM1)", "Myotonic Dystrophy Type 2", "IGF-1 Deficiency",
	"Advanced solid tumors", "Fabry Disease", "Lysosomal Storage Diseases",
}
